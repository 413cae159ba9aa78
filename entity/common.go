package entity

import (
	"github.com/bwmarrin/snowflake"
)

const (
	ModuleName = "blackjack"
)

var SnowlakeNode, _ = snowflake.NewNode(1)

// NewID returns a fresh session or round identifier.
func NewID() string {
	return SnowlakeNode.Generate().String()
}

func MinInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func MaxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
