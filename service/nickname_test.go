package service

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nicknameSuffixPattern = regexp.MustCompile(`(\d+)$`)

func TestNicknameGenerator_Generate(t *testing.T) {
	gen := NewNicknameGenerator(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		nickname := gen.Generate()

		// 形容词+名词+数字后缀
		match := nicknameSuffixPattern.FindStringSubmatch(nickname)
		require.NotNil(t, match, "昵称 %q 缺少数字后缀", nickname)

		suffix, err := strconv.Atoi(match[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, suffix, 1)
		assert.LessOrEqual(t, suffix, 9999)

		base := strings.TrimSuffix(nickname, match[1])
		var foundAdjective bool
		for _, adjective := range nicknameAdjectives {
			if strings.HasPrefix(base, adjective) {
				foundAdjective = true
				noun := strings.TrimPrefix(base, adjective)
				assert.Contains(t, nicknameNouns, noun, "昵称 %q 的名词不在词库中", nickname)
				break
			}
		}
		assert.True(t, foundAdjective, "昵称 %q 的形容词不在词库中", nickname)
	}
}

func TestNicknameGenerator_DeterministicWithSeed(t *testing.T) {
	genA := NewNicknameGenerator(rand.New(rand.NewSource(7)))
	genB := NewNicknameGenerator(rand.New(rand.NewSource(7)))

	for i := 0; i < 20; i++ {
		assert.Equal(t, genA.Generate(), genB.Generate())
	}
}

func TestNicknameGenerator_OrDefault(t *testing.T) {
	gen := newTestNicknameGen()

	// 用户填写了昵称时原样返回
	assert.Equal(t, "自定义昵称", gen.OrDefault("自定义昵称"))

	// 留空时生成随机昵称
	generated := gen.OrDefault("")
	assert.NotEmpty(t, generated)
}
