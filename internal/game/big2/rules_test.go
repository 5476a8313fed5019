package big2

import (
	"testing"

	"CardCasino/internal/game/deck"
)

func cardsOf(t *testing.T, tokens ...string) []deck.Card {
	t.Helper()
	cards, err := deck.ParseAll(tokens)
	if err != nil {
		t.Fatalf("bad test cards %v: %v", tokens, err)
	}
	return cards
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		tokens []string
		tag    Tag
		key    [2]int
	}{
		{"single", []string{"3C"}, Single, [2]int{0, 0}},
		{"single ace of spades", []string{"AS"}, Single, [2]int{11*4 + 3, 0}},
		{"pair", []string{"7H", "7C"}, Pair, [2]int{4, 2}},
		{"pair of twos", []string{"2S", "2D"}, Pair, [2]int{12, 3}},
		{"not a pair", []string{"7H", "8H"}, Invalid, [2]int{}},
		{"triple", []string{"9C", "9D", "9S"}, Triple, [2]int{6, 0}},
		{"not a triple", []string{"9C", "9D", "8S"}, Invalid, [2]int{}},
		{"straight mixed suits", []string{"3C", "4D", "5H", "6S", "7C"}, Straight, [2]int{4, 0}},
		{"straight to ace", []string{"TD", "JC", "QH", "KS", "AC"}, Straight, [2]int{11, 0}},
		{"two-high straight", []string{"JC", "QH", "KS", "AC", "2D"}, Straight, [2]int{12, 0}},
		{"wraparound is not a straight", []string{"2C", "3D", "4H", "5S", "6C"}, Invalid, [2]int{}},
		{"broken straight", []string{"3C", "4D", "5H", "6S", "8C"}, Invalid, [2]int{}},
		{"flush is not a combination", []string{"3H", "5H", "7H", "9H", "JH"}, Invalid, [2]int{}},
		{"full house", []string{"8C", "8D", "8H", "KC", "KS"}, FullHouse, [2]int{5, 10}},
		{"four of a kind", []string{"QC", "QD", "QH", "QS", "3C"}, FourOfAKind, [2]int{9, 0}},
		{"two pairs plus kicker", []string{"8C", "8D", "KC", "KS", "3C"}, Invalid, [2]int{}},
		{"four cards", []string{"8C", "8D", "8H", "8S"}, Invalid, [2]int{}},
		{"empty", nil, Invalid, [2]int{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			combo := Classify(cardsOf(t, tc.tokens...))
			if combo.Tag != tc.tag {
				t.Fatalf("tag = %v, want %v", combo.Tag, tc.tag)
			}
			if combo.Tag != Invalid && combo.Key != tc.key {
				t.Fatalf("key = %v, want %v", combo.Key, tc.key)
			}
		})
	}
}

// 同一组牌不管以什么顺序进来，结果必须一样。
func TestClassifyOrderInsensitive(t *testing.T) {
	a := Classify(cardsOf(t, "8C", "8D", "8H", "KC", "KS"))
	b := Classify(cardsOf(t, "KS", "8H", "KC", "8D", "8C"))
	if a.Tag != b.Tag || a.Key != b.Key {
		t.Fatalf("classification depends on input order: %v/%v vs %v/%v", a.Tag, a.Key, b.Tag, b.Key)
	}
}

func TestBeats(t *testing.T) {
	single3 := Classify(cardsOf(t, "3C"))
	singleA := Classify(cardsOf(t, "AS"))
	pair7 := Classify(cardsOf(t, "7C", "7D"))
	pair9 := Classify(cardsOf(t, "9C", "9D"))
	pair9High := Classify(cardsOf(t, "9H", "9S"))
	straight := Classify(cardsOf(t, "3C", "4D", "5H", "6S", "7C"))
	four := Classify(cardsOf(t, "QC", "QD", "QH", "QS", "3C"))

	// 自由出牌：任何合法牌型都能出
	for _, combo := range []Combination{single3, pair7, straight, four} {
		if !combo.Beats(nil) {
			t.Fatalf("%v should be playable on a free lead", combo.Tag)
		}
	}
	if (Combination{Tag: Invalid}).Beats(nil) {
		t.Fatal("invalid combination must never be playable")
	}

	// 同牌型比大小
	if !singleA.Beats(&single3) {
		t.Fatal("AS should beat 3C")
	}
	if pair7.Beats(&pair9) {
		t.Fatal("lower pair must not beat higher pair")
	}
	if !pair9High.Beats(&pair9) {
		t.Fatal("same-rank pair with higher suit should win")
	}

	// 不同牌型永远互不相压
	if four.Beats(&single3) {
		t.Fatal("four of a kind must not beat a single in this ruleset")
	}
	if singleA.Beats(&pair7) {
		t.Fatal("single must not beat a pair")
	}
	if straight.Beats(&pair7) {
		t.Fatal("straight must not beat a pair")
	}
}
