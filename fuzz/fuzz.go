package fuzz

import (
	"github.com/dcastelo/scheme-engine/reader"
)

func Fuzz(data []byte) int {
	_, err := reader.ReadAll(string(data))
	if err != nil {
		return 0
	}
	return 1
}
