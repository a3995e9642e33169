package pkg

import (
	cryptoRand "crypto/rand"
	"math/big"
)

var ten = big.NewInt(10)

// RandDigits 生成n位数字验证码
func RandDigits(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		x, err := cryptoRand.Int(cryptoRand.Reader, ten)
		if err != nil {
			return "", err
		}
		digits[i] = '0' + byte(x.Int64())
	}
	return string(digits), nil
}
