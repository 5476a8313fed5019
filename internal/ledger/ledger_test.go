package ledger

import (
	"errors"
	"testing"
)

func TestBalanceOps(t *testing.T) {
	r := NewRegistry(1000)
	p := r.NewPlayer()

	if p.Balance() != 1000 {
		t.Fatalf("starting balance = %d, want 1000", p.Balance())
	}
	if p.ID() == "" {
		t.Fatal("player should get an id at creation")
	}

	if !p.Debit(300) {
		t.Fatal("debit within balance should succeed")
	}
	if p.Balance() != 700 {
		t.Fatalf("balance = %d, want 700", p.Balance())
	}

	if p.Debit(701) {
		t.Fatal("debit beyond balance should fail")
	}
	if p.Balance() != 700 {
		t.Fatal("failed debit must not change the balance")
	}

	p.Credit(50)
	if p.Balance() != 750 {
		t.Fatalf("balance = %d, want 750", p.Balance())
	}
}

func TestNameUniqueness(t *testing.T) {
	r := NewRegistry(1000)
	a := r.NewPlayer()
	b := r.NewPlayer()

	if err := r.ClaimName(a, "alice"); err != nil {
		t.Fatal(err)
	}
	if err := r.ClaimName(b, "alice"); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}

	// 改名释放旧昵称
	if err := r.ClaimName(a, "alice2"); err != nil {
		t.Fatal(err)
	}
	if err := r.ClaimName(b, "alice"); err != nil {
		t.Fatalf("old name should be free after rename: %v", err)
	}

	// 重复认领自己的名字没问题
	if err := r.ClaimName(a, "alice2"); err != nil {
		t.Fatal(err)
	}

	// 断线归还
	r.Release(b)
	c := r.NewPlayer()
	if err := r.ClaimName(c, "alice"); err != nil {
		t.Fatalf("name should be free after release: %v", err)
	}
}
