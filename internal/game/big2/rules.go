package big2

import (
	"CardCasino/internal/game/deck"
)

// Tag 是牌型标签。本版本为简化规则：只允许相同牌型互压，
// 不认同花顺/同花，五张牌也压不了单张。
type Tag int

const (
	Invalid Tag = iota
	Single
	Pair
	Triple
	Straight
	FullHouse
	FourOfAKind
)

func (t Tag) String() string {
	switch t {
	case Single:
		return "SINGLE"
	case Pair:
		return "PAIR"
	case Triple:
		return "TRIPLE"
	case Straight:
		return "STRAIGHT"
	case FullHouse:
		return "FULLHOUSE"
	case FourOfAKind:
		return "FOUR"
	default:
		return "INVALID"
	}
}

// Combination 是一组已分类的牌。Key 只在同 Tag 之间可比，
// 按字典序比较（主键在前，kicker/花色在后）。
type Combination struct {
	Tag   Tag
	Key   [2]int
	Cards []deck.Card
}

// Classify 对 1/2/3/5 张牌做牌型判定。对任何输入都有确定结果，
// 与牌的输入顺序无关。
func Classify(cards []deck.Card) Combination {
	sorted := make([]deck.Card, len(cards))
	copy(sorted, cards)
	deck.SortHand(sorted)

	switch len(sorted) {
	case 1:
		return Combination{Tag: Single, Key: [2]int{sorted[0].Power(), 0}, Cards: sorted}

	case 2:
		if sorted[0].Rank == sorted[1].Rank {
			return Combination{
				Tag:   Pair,
				Key:   [2]int{sorted[0].Rank, sorted[1].Suit}, // 排序后第二张花色较大
				Cards: sorted,
			}
		}

	case 3:
		if sorted[0].Rank == sorted[1].Rank && sorted[1].Rank == sorted[2].Rank {
			return Combination{Tag: Triple, Key: [2]int{sorted[0].Rank, 0}, Cards: sorted}
		}

	case 5:
		counts := make(map[int]int, 5)
		for _, c := range sorted {
			counts[c.Rank]++
		}
		switch len(counts) {
		case 2:
			// {4,1} 铁支带单，{3,2} 葫芦
			var quad, triple, pair, kicker = -1, -1, -1, -1
			for r, n := range counts {
				switch n {
				case 4:
					quad = r
				case 3:
					triple = r
				case 2:
					pair = r
				case 1:
					kicker = r
				}
			}
			if quad >= 0 {
				return Combination{Tag: FourOfAKind, Key: [2]int{quad, kicker}, Cards: sorted}
			}
			if triple >= 0 && pair >= 0 {
				return Combination{Tag: FullHouse, Key: [2]int{triple, pair}, Cards: sorted}
			}
		case 5:
			// 五个不同点数且连续（按 3..2 的 13 阶序，不回绕）
			if sorted[4].Rank-sorted[0].Rank == 4 {
				return Combination{Tag: Straight, Key: [2]int{sorted[4].Rank, 0}, Cards: sorted}
			}
		}
	}

	return Combination{Tag: Invalid}
}

// Beats 判断 c 能否压过 last。自由出牌（last 为 nil）时任何
// 非 Invalid 牌型都可出；否则必须同 Tag 且 Key 严格更大。
func (c Combination) Beats(last *Combination) bool {
	if c.Tag == Invalid {
		return false
	}
	if last == nil {
		return true
	}
	if c.Tag != last.Tag {
		return false
	}
	if c.Key[0] != last.Key[0] {
		return c.Key[0] > last.Key[0]
	}
	return c.Key[1] > last.Key[1]
}
