package deck

import (
	"math/rand"
	"sort"
)

// Dealer 只负责洗牌与发牌（不做规则判断）。
// 自带 rand 源，测试里用固定 seed 可以得到确定的牌序。
type Dealer struct {
	deck []Card
	rnd  *rand.Rand
}

func NewDealer(seed int64) *Dealer {
	return &Dealer{
		deck: make([]Card, 0, 52),
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// NewDeck 生成一副 52 张的新牌并洗乱。
func (d *Dealer) NewDeck() {
	d.deck = d.deck[:0]
	for r := 0; r < 13; r++ {
		for s := 0; s < 4; s++ {
			d.deck = append(d.deck, Card{Rank: r, Suit: s})
		}
	}
	d.rnd.Shuffle(len(d.deck), func(i, j int) {
		d.deck[i], d.deck[j] = d.deck[j], d.deck[i]
	})
}

// Deal 把整副牌分给 numSeats 家、每家 perSeat 张，各家按全序排好。
// 牌不够时返回 nil。
func (d *Dealer) Deal(numSeats, perSeat int) [][]Card {
	if len(d.deck) < numSeats*perSeat {
		return nil
	}
	hands := make([][]Card, numSeats)
	for i := 0; i < numSeats; i++ {
		hand := make([]Card, perSeat)
		copy(hand, d.deck[i*perSeat:(i+1)*perSeat])
		SortHand(hand)
		hands[i] = hand
	}
	d.deck = d.deck[numSeats*perSeat:]
	return hands
}

// SortHand 按全序（点数优先、花色破平）升序排列。
func SortHand(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Power() < cards[j].Power()
	})
}
