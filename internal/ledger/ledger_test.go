package ledger

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/credit-ledger/internal/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func client(id, name string, phone ...string) models.Client {
	c := models.Client{ID: id, UserID: "owner", Name: name}
	if len(phone) > 0 {
		p := phone[0]
		c.Phone = &p
	}
	return c
}

var seq int

func txn(clientID string, typ models.TransactionType, amount string) models.Transaction {
	seq++
	return models.Transaction{
		ID:       "t" + strconv.Itoa(seq),
		UserID:   "owner",
		ClientID: clientID,
		Amount:   dec(amount),
		Type:     typ,
	}
}

func balanceOf(t *testing.T, bs []models.ClientBalance, id string) models.ClientBalance {
	t.Helper()
	for _, b := range bs {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("no balance for client %s", id)
	return models.ClientBalance{}
}

func TestComputeBalances_HamidScenario(t *testing.T) {
	clients := []models.Client{client("c1", "Hamid")}
	txns := []models.Transaction{
		txn("c1", models.TxnCredit, "100"),
		txn("c1", models.TxnCredit, "50"),
		txn("c1", models.TxnPayment, "30"),
	}

	got := ComputeBalances(clients, txns)
	require.Len(t, got, 1)
	assertDec(t, "150", got[0].TotalCredit)
	assertDec(t, "30", got[0].TotalPayment)
	assertDec(t, "120", got[0].Balance)
	assert.Equal(t, "Hamid", got[0].Name)
}

func TestComputeBalances_NoTransactionsIsZero(t *testing.T) {
	got := ComputeBalances([]models.Client{client("c1", "Empty")}, nil)
	require.Len(t, got, 1)
	assertDec(t, "0", got[0].TotalCredit)
	assertDec(t, "0", got[0].TotalPayment)
	assertDec(t, "0", got[0].Balance)
	assertDec(t, "0", GlobalOutstanding(got))
}

func TestComputeBalances_IgnoresUnknownClients(t *testing.T) {
	clients := []models.Client{client("c1", "Known")}
	txns := []models.Transaction{
		txn("c1", models.TxnCredit, "10"),
		txn("gone", models.TxnCredit, "999"),
		txn("gone", models.TxnPayment, "5"),
	}
	got := ComputeBalances(clients, txns)
	require.Len(t, got, 1)
	assertDec(t, "10", got[0].Balance)
}

func TestComputeBalances_KeepsInputOrderAndDoesNotMutate(t *testing.T) {
	clients := []models.Client{client("b", "B"), client("a", "A"), client("c", "C")}
	txns := []models.Transaction{txn("a", models.TxnCredit, "1")}
	before := append([]models.Client(nil), clients...)

	got := ComputeBalances(clients, txns)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, before, clients)
}

func TestComputeBalances_ExactDecimalSums(t *testing.T) {
	clients := []models.Client{client("c1", "Cents")}
	var txns []models.Transaction
	for i := 0; i < 10; i++ {
		txns = append(txns, txn("c1", models.TxnCredit, "0.10"))
	}
	txns = append(txns, txn("c1", models.TxnPayment, "0.30"), txn("c1", models.TxnPayment, "0.70"))

	got := ComputeBalances(clients, txns)
	assertDec(t, "1", got[0].TotalCredit)
	assertDec(t, "1", got[0].TotalPayment)
	assert.True(t, got[0].Balance.IsZero(), "0.10 x10 - (0.30+0.70) must be exactly zero, got %s", got[0].Balance)
}

func TestComputeBalances_BalanceIsCreditMinusPayment(t *testing.T) {
	clients := []models.Client{client("a", "A"), client("b", "B"), client("c", "C")}
	txns := []models.Transaction{
		txn("a", models.TxnCredit, "12.34"),
		txn("b", models.TxnPayment, "7.01"),
		txn("a", models.TxnPayment, "2.35"),
		txn("c", models.TxnCredit, "0.01"),
		txn("b", models.TxnCredit, "3.99"),
	}
	for _, b := range ComputeBalances(clients, txns) {
		assert.True(t, b.Balance.Equal(b.TotalCredit.Sub(b.TotalPayment)), "client %s", b.ID)
	}
}

func TestGlobalOutstanding_ClampsOverpaidClients(t *testing.T) {
	clients := []models.Client{client("a", "A"), client("b", "B")}
	txns := []models.Transaction{
		txn("a", models.TxnCredit, "200"),
		txn("b", models.TxnCredit, "50"),
		txn("b", models.TxnPayment, "100"),
	}
	bs := ComputeBalances(clients, txns)
	assertDec(t, "-50", balanceOf(t, bs, "b").Balance)
	assertDec(t, "200", GlobalOutstanding(bs))
}

func TestGlobalOutstanding_OverpaidContributesZeroRegardlessOfMagnitude(t *testing.T) {
	for _, overpay := range []string{"0.01", "50", "1000000"} {
		t.Run(overpay, func(t *testing.T) {
			clients := []models.Client{client("a", "A"), client("b", "B")}
			txns := []models.Transaction{
				txn("a", models.TxnCredit, "75.50"),
				txn("b", models.TxnPayment, overpay),
			}
			assertDec(t, "75.5", GlobalOutstanding(ComputeBalances(clients, txns)))
		})
	}
}

func TestGlobalOutstanding_Monotonic(t *testing.T) {
	clients := []models.Client{client("a", "A"), client("b", "B")}
	txns := []models.Transaction{
		txn("a", models.TxnCredit, "40"),
		txn("b", models.TxnPayment, "10"),
	}
	base := GlobalOutstanding(ComputeBalances(clients, txns))

	for _, id := range []string{"a", "b"} {
		withCredit := append(append([]models.Transaction(nil), txns...), txn(id, models.TxnCredit, "25"))
		after := GlobalOutstanding(ComputeBalances(clients, withCredit))
		assert.True(t, after.GreaterThanOrEqual(base), "credit on %s decreased outstanding: %s -> %s", id, base, after)

		withPayment := append(append([]models.Transaction(nil), txns...), txn(id, models.TxnPayment, "25"))
		after = GlobalOutstanding(ComputeBalances(clients, withPayment))
		assert.True(t, after.LessThanOrEqual(base), "payment on %s increased outstanding: %s -> %s", id, base, after)
	}
}

func TestDeletingTransactionRemovesExactlyItsAmount(t *testing.T) {
	clients := []models.Client{client("a", "A"), client("b", "B")}
	txns := []models.Transaction{
		txn("a", models.TxnCredit, "100"),
		txn("a", models.TxnCredit, "19.99"),
		txn("a", models.TxnPayment, "20"),
		txn("b", models.TxnCredit, "5"),
	}
	before := ComputeBalances(clients, txns)

	// drop the 19.99 credit
	remaining := append(append([]models.Transaction(nil), txns[:1]...), txns[2:]...)
	after := ComputeBalances(clients, remaining)

	assertDec(t, "119.99", balanceOf(t, before, "a").TotalCredit)
	assertDec(t, "100", balanceOf(t, after, "a").TotalCredit)
	assertDec(t, "20", balanceOf(t, after, "a").TotalPayment)
	assert.Equal(t, balanceOf(t, before, "b"), balanceOf(t, after, "b"))
}

func TestRankAndFilter_EmptyQuerySortsAllDescending(t *testing.T) {
	clients := []models.Client{client("low", "Low"), client("high", "High"), client("neg", "Neg"), client("mid", "Mid")}
	txns := []models.Transaction{
		txn("low", models.TxnCredit, "1"),
		txn("high", models.TxnCredit, "300"),
		txn("neg", models.TxnPayment, "10"),
		txn("mid", models.TxnCredit, "30"),
	}
	bs := ComputeBalances(clients, txns)

	got := RankAndFilter(bs, "")
	require.Len(t, got, 4)
	assert.Equal(t, []string{"high", "mid", "low", "neg"}, ids(got))
	// input untouched
	assert.Equal(t, []string{"low", "high", "neg", "mid"}, ids(bs))
}

func TestRankAndFilter_StableForEqualBalances(t *testing.T) {
	clients := []models.Client{client("x", "X"), client("y", "Y"), client("z", "Z"), client("top", "Top")}
	txns := []models.Transaction{txn("top", models.TxnCredit, "1")}

	got := RankAndFilter(ComputeBalances(clients, txns), "")
	assert.Equal(t, []string{"top", "x", "y", "z"}, ids(got))
}

func TestRankAndFilter_NameAndPhoneMatching(t *testing.T) {
	clients := []models.Client{
		client("hamid", "Hamid Marrakchi"),
		client("said", "Said", "0600ham"),
		client("other", "Karim", "0611223344"),
	}
	bs := ComputeBalances(clients, nil)

	assert.ElementsMatch(t, []string{"hamid", "said"}, ids(RankAndFilter(bs, "ham")))
	assert.Equal(t, []string{"hamid"}, ids(RankAndFilter(bs, "HAM")))
	assert.Equal(t, []string{"other"}, ids(RankAndFilter(bs, "1122")))
	assert.Equal(t, []string{"hamid"}, ids(RankAndFilter(bs, "marrak")))
	assert.Empty(t, RankAndFilter(bs, "nobody"))
}

func TestRankAndFilter_UnicodeNames(t *testing.T) {
	clients := []models.Client{client("a", "حميد المراكشي"), client("b", "Élodie")}
	bs := ComputeBalances(clients, nil)

	assert.Equal(t, []string{"a"}, ids(RankAndFilter(bs, "حميد")))
	assert.Equal(t, []string{"b"}, ids(RankAndFilter(bs, "éLO")))
}

func TestSummarize(t *testing.T) {
	clients := []models.Client{client("a", "Amina"), client("b", "Brahim"), client("c", "Chaimae")}
	txns := []models.Transaction{
		txn("a", models.TxnCredit, "200"),
		txn("b", models.TxnPayment, "50"),
		txn("c", models.TxnCredit, "10.25"),
	}

	s := Summarize(clients, txns, "a")
	// every name contains an "a"; outstanding covers all clients regardless of filter
	assert.Equal(t, 3, s.ClientCount)
	assertDec(t, "210.25", s.Outstanding)
	assert.Equal(t, []string{"a", "c", "b"}, ids(s.Clients))

	s = Summarize(clients, txns, "brah")
	assertDec(t, "210.25", s.Outstanding)
	assert.Equal(t, []string{"b"}, ids(s.Clients))
}

func ids(bs []models.ClientBalance) []string {
	out := make([]string, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.ID)
	}
	return out
}
