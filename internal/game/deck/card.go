package deck

import (
	"fmt"
	"strings"
)

// 大老二点数序：3 最小，2 最大。
const rankOrder = "3456789TJQKA2"

// 花色序：梅花 < 方块 < 红桃 < 黑桃。
const suitOrder = "CDHS"

// Card 是一张不可变的牌 (rank 0..12 对应 3..2, suit 0..3 对应 C/D/H/S)。
type Card struct {
	Rank int `json:"rank"`
	Suit int `json:"suit"`
}

// Power 给出全序键：点数优先，花色破平。
func (c Card) Power() int {
	return c.Rank*4 + c.Suit
}

// String 返回线协议牌面记号，如 "3C"、"TD"、"AS"。
func (c Card) String() string {
	if c.Rank < 0 || c.Rank >= len(rankOrder) || c.Suit < 0 || c.Suit >= len(suitOrder) {
		return "??"
	}
	return string(rankOrder[c.Rank]) + string(suitOrder[c.Suit])
}

// Parse 解析单个牌面记号（大小写不敏感）。
func Parse(token string) (Card, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if len(t) != 2 {
		return Card{}, fmt.Errorf("bad card token %q", token)
	}
	r := strings.IndexByte(rankOrder, t[0])
	s := strings.IndexByte(suitOrder, t[1])
	if r < 0 || s < 0 {
		return Card{}, fmt.Errorf("bad card token %q", token)
	}
	return Card{Rank: r, Suit: s}, nil
}

// ParseAll 解析一组记号，任何一个失败则整体失败。
func ParseAll(tokens []string) ([]Card, error) {
	cards := make([]Card, 0, len(tokens))
	for _, t := range tokens {
		c, err := Parse(t)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Format 把一手牌连成空格分隔的一行。
func Format(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
