package game

import (
	"strings"
	"testing"
	"time"

	"github.com/samdwyer/aegean/internal/board"
	"github.com/samdwyer/aegean/internal/deck"
	"github.com/samdwyer/aegean/internal/entity"
	"github.com/samdwyer/aegean/internal/gamedata"
	"github.com/samdwyer/aegean/internal/weather"
)

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseLobby, "LOBBY"},
		{PhaseRolling, "ROLLING"},
		{PhaseMoving, "MOVING"},
		{PhaseChoosingPath, "CHOOSING_PATH"},
		{PhaseAction, "ACTION"},
		{PhaseEvent, "EVENT"},
		{PhaseGameOver, "GAME_OVER"},
		{Phase(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
		}
	}
}

func TestInitialLobby(t *testing.T) {
	h := newHarness(t, nil)

	if h.s.Phase != PhaseLobby {
		t.Errorf("Phase = %s, want LOBBY", h.s.Phase)
	}
	if len(h.s.Players) != 2 {
		t.Fatalf("players = %d, want 2", len(h.s.Players))
	}
	for i, p := range h.s.Players {
		if p.Position != "home" || p.Money != 1000 || p.Ferry != "STANDARD" || p.Tourists != 20 {
			t.Errorf("player %d = %+v", i, p)
		}
		if p.Avatar != gamedata.DefaultAvatar(i) {
			t.Errorf("player %d avatar = %q", i, p.Avatar)
		}
	}
	if h.s.Players[0].ID != "p1" || h.s.Players[1].ID != "p2" {
		t.Errorf("ids = %s, %s", h.s.Players[0].ID, h.s.Players[1].ID)
	}
	if h.s.Day != 1 || h.s.MaxDays != 31 || h.s.Weather != weather.Clear {
		t.Errorf("calendar = day %d/%d %s", h.s.Day, h.s.MaxDays, h.s.Weather)
	}
}

func TestRosterRules(t *testing.T) {
	h := newHarness(t, nil)

	h.must(AddPlayer{})
	h.must(AddPlayer{})
	expectCode(t, h.do(AddPlayer{}), CodePlayerLimit)
	if len(h.s.Players) != MaxPlayers {
		t.Fatalf("players = %d, want %d", len(h.s.Players), MaxPlayers)
	}

	h.must(RemovePlayer{PlayerID: "p4"})
	h.must(AddPlayer{})
	if got := h.s.Players[3].ID; got != "p5" {
		t.Errorf("re-added player id = %s, want p5", got)
	}

	h.must(RemovePlayer{PlayerID: "p1"})
	h.must(RemovePlayer{PlayerID: "p5"})
	expectCode(t, h.do(RemovePlayer{PlayerID: "p2"}), CodePlayerLimit)
	expectCode(t, h.do(RemovePlayer{PlayerID: "ghost"}), CodeUnknownPlayer)

	h.must(RenamePlayer{PlayerID: "p2", NewName: "  Ariadne "})
	if h.s.Players[0].Name != "Ariadne" {
		t.Errorf("name = %q, want trimmed Ariadne", h.s.Players[0].Name)
	}
	expectCode(t, h.do(RenamePlayer{PlayerID: "p2", NewName: "   "}), CodeInvalidName)
	h.must(SetAvatar{PlayerID: "p3", Avatar: "#22c55e"})
	expectCode(t, h.do(SetAvatar{PlayerID: "p3", Avatar: ""}), CodeInvalidAvatar)

	h.must(StartGame{})
	expectCode(t, h.do(AddPlayer{}), CodeWrongPhase)
	expectCode(t, h.do(RemovePlayer{PlayerID: "p2"}), CodeWrongPhase)
	expectCode(t, h.do(StartGame{}), CodeWrongPhase)
	h.must(RenamePlayer{PlayerID: "p3", NewName: "Nikos"})
}

func TestNewSeatsTakeAFreeAvatar(t *testing.T) {
	h := newHarness(t, nil)
	h.must(AddPlayer{})
	h.must(RemovePlayer{PlayerID: "p1"})
	h.must(AddPlayer{})

	seen := map[string]string{}
	for _, p := range h.s.Players {
		if other, ok := seen[p.Avatar]; ok {
			t.Errorf("%s and %s share avatar %s", other, p.ID, p.Avatar)
		}
		seen[p.Avatar] = p.ID
	}
	if got := h.s.Players[2].Avatar; got != gamedata.AvatarPalette[0] {
		t.Errorf("new seat avatar = %s, want the freed %s", got, gamedata.AvatarPalette[0])
	}
}

func TestRequestRollOutsideRollingIsNoOp(t *testing.T) {
	h := newHarness(t, []int{4})
	before := h.s

	d := h.do(RequestRoll{})
	expectCode(t, d, CodeWrongPhase)
	if h.s.Phase != before.Phase || h.s.DiceValue != before.DiceValue || h.s.Pending != nil {
		t.Error("rejected roll changed the state")
	}
}

func TestSecondRollWhileRollingIsIgnored(t *testing.T) {
	h := newHarness(t, []int{4, 6})
	h.must(StartGame{})

	d := h.must(RequestRoll{})
	if d.Scheduled == nil || d.Scheduled.Kind != TimedRoll || d.Scheduled.Duration != 1500*time.Millisecond {
		t.Fatalf("Scheduled = %+v, want a 1.5s roll", d.Scheduled)
	}
	if !d.Scheduled.StartedAt.Equal(testEpoch) {
		t.Errorf("StartedAt = %v, want the clock time", d.Scheduled.StartedAt)
	}
	if !h.s.Rolling || h.s.DiceValue != 4 {
		t.Errorf("Rolling=%v DiceValue=%d", h.s.Rolling, h.s.DiceValue)
	}

	seq := h.s.Pending.Seq
	expectCode(t, h.do(RequestRoll{}), CodeBusy)
	if h.s.DiceValue != 4 || h.s.Pending.Seq != seq {
		t.Error("second roll replaced the first")
	}
}

func TestRollFourAlongChain(t *testing.T) {
	h := newHarness(t, []int{4})
	h.must(StartGame{})
	h.must(RequestRoll{})

	d := h.complete()
	if h.s.Phase != PhaseMoving || h.s.RemainingSteps != 4 {
		t.Fatalf("after roll: phase %s steps %d", h.s.Phase, h.s.RemainingSteps)
	}
	if h.s.Players[0].Destination != "n1" {
		t.Errorf("Destination = %q, want n1", h.s.Players[0].Destination)
	}
	if d.Scheduled == nil || d.Scheduled.Kind != TimedTransit || d.Scheduled.Duration != 3*time.Second {
		t.Errorf("Scheduled = %+v, want a 3s transit", d.Scheduled)
	}

	want := []string{"n1", "n2", "n3", "n4"}
	for i, id := range want {
		h.complete()
		if h.position(0) != id {
			t.Fatalf("hop %d: position %s, want %s", i, h.position(0), id)
		}
		if h.s.RemainingSteps != 3-i {
			t.Errorf("hop %d: remaining %d, want %d", i, h.s.RemainingSteps, 3-i)
		}
	}

	if h.s.Phase != PhaseAction {
		t.Errorf("Phase = %s, want ACTION", h.s.Phase)
	}
	if h.s.Players[0].InTransit() || h.s.Pending != nil {
		t.Error("walk should be over")
	}
	if !strings.Contains(h.s.Message, "Hydra") {
		t.Errorf("Message = %q, want landing on Hydra", h.s.Message)
	}
}

func TestBranchPointSuspendsForChoice(t *testing.T) {
	h := newHarness(t, []int{5})
	h.must(StartGame{})
	h.roll()

	if h.s.Phase != PhaseChoosingPath {
		t.Fatalf("Phase = %s, want CHOOSING_PATH", h.s.Phase)
	}
	if len(h.s.ValidBranches) != 2 || h.s.ValidBranches[0] != "sea" || h.s.ValidBranches[1] != "x" {
		t.Errorf("ValidBranches = %v, want [sea x]", h.s.ValidBranches)
	}
	for _, b := range h.s.ValidBranches {
		if !h.eng.Board().Adjacent(h.position(0), b) {
			t.Errorf("branch %s not adjacent to %s", b, h.position(0))
		}
	}

	expectCode(t, h.do(ChooseDirection{NodeID: "n3"}), CodeInvalidBranch)
	expectCode(t, h.do(ChooseDirection{NodeID: "home"}), CodeInvalidBranch)
	expectCode(t, h.do(RequestRoll{}), CodeWrongPhase)
	if h.s.Phase != PhaseChoosingPath || h.s.RemainingSteps != 1 {
		t.Fatal("invalid choice changed the state")
	}

	h.must(ChooseDirection{NodeID: "x"})
	if h.s.Phase != PhaseMoving || len(h.s.ValidBranches) != 0 {
		t.Errorf("after choice: phase %s branches %v", h.s.Phase, h.s.ValidBranches)
	}
	h.walk()
	if h.position(0) != "x" || h.s.Phase != PhaseAction {
		t.Errorf("landed on %s in %s, want x in ACTION", h.position(0), h.s.Phase)
	}
}

func TestDeadEndAllowsBacktrack(t *testing.T) {
	h := newHarness(t, []int{6})
	h.must(StartGame{})
	h.roll()
	h.must(ChooseDirection{NodeID: "x"})
	h.walk()

	if h.position(0) != "n4" {
		t.Errorf("position = %s, want n4 after bouncing off the dead end", h.position(0))
	}
	if h.s.PreviousNode != "x" {
		t.Errorf("PreviousNode = %s, want x", h.s.PreviousNode)
	}
	if h.s.Phase != PhaseAction {
		t.Errorf("Phase = %s, want ACTION", h.s.Phase)
	}
}

func TestIsolatedStartLandsImmediately(t *testing.T) {
	g, err := board.New([]board.Node{{ID: "home", Name: "Home Port", Kind: board.KindStart}}, nil)
	if err != nil {
		t.Fatalf("board.New() error = %v", err)
	}
	h := newHarness(t, []int{3}, withBoard(g))
	h.must(StartGame{})
	h.roll()

	if h.s.Phase != PhaseRolling || h.s.TurnIndex != 1 {
		t.Errorf("phase %s turn %d, want ROLLING and seat 1", h.s.Phase, h.s.TurnIndex)
	}
	if h.s.RemainingSteps != 0 || h.s.Pending != nil {
		t.Errorf("steps %d pending %+v, want none", h.s.RemainingSteps, h.s.Pending)
	}
	if h.position(0) != "home" {
		t.Errorf("position = %s, want home", h.position(0))
	}
	if !strings.Contains(h.s.Message, "Relaxing at Home Port") {
		t.Errorf("Message = %q", h.s.Message)
	}
}

func TestStormHalvesRoll(t *testing.T) {
	h := newHarness(t, []int{5})
	h.must(StartGame{})
	h.set(func(s *State) { s.Weather = weather.Gale })

	h.must(RequestRoll{})
	h.complete()
	if h.s.RemainingSteps != 3 {
		t.Errorf("RemainingSteps = %d, want 3", h.s.RemainingSteps)
	}
	if h.s.DiceValue != 5 {
		t.Errorf("DiceValue = %d, want raw 5", h.s.DiceValue)
	}
	if !strings.Contains(h.s.Message, "half speed") {
		t.Errorf("Message = %q, want a gale note", h.s.Message)
	}
	h.walk()
	if h.position(0) != "n3" {
		t.Errorf("position = %s, want n3", h.position(0))
	}
}

func TestBuyAndSettle(t *testing.T) {
	h := newHarness(t, []int{4})
	h.must(StartGame{})
	h.roll()

	d := h.must(Buy{})
	if h.money(0) != 700 || h.node("n4").Owner != "p1" || !h.s.Players[0].Owns("n4") {
		t.Errorf("after buy: money %d owner %q", h.money(0), h.node("n4").Owner)
	}
	if d.Scheduled == nil || d.Scheduled.Kind != TimedSettle || d.Scheduled.Duration != 1500*time.Millisecond {
		t.Errorf("Scheduled = %+v, want a 1.5s settle", d.Scheduled)
	}

	expectCode(t, h.do(Buy{}), CodeBusy)
	expectCode(t, h.do(SkipAction{}), CodeBusy)

	h.complete()
	if h.s.TurnIndex != 1 || h.s.Phase != PhaseRolling {
		t.Errorf("after settle: turn %d phase %s", h.s.TurnIndex, h.s.Phase)
	}
}

func TestBuyFailsWithoutStateChange(t *testing.T) {
	h := newHarness(t, []int{4, 4})
	h.must(StartGame{})
	h.set(func(s *State) { s.Players[0].Money = 299 })
	h.roll()

	expectCode(t, h.do(Buy{}), CodeInsufficientFunds)
	if h.money(0) != 299 || h.node("n4").IsOwned() || h.s.Pending != nil {
		t.Error("failed buy changed the state")
	}
	if h.s.Message != "Not enough Euros!" {
		t.Errorf("Message = %q", h.s.Message)
	}

	h.own("n4", "p2", 1)
	expectCode(t, h.do(Buy{}), CodeNotPurchasable)
	if h.node("n4").Owner != "p2" {
		t.Error("owned node changed hands")
	}
}

func TestUpgradeWithoutFundsIsNoOp(t *testing.T) {
	h := newHarness(t, []int{5})
	h.must(StartGame{})
	h.own("x", "p1", 1)
	h.set(func(s *State) { s.Players[0].Money = 40 })
	h.roll()
	h.must(ChooseDirection{NodeID: "x"})
	h.walk()

	if h.s.Phase != PhaseAction {
		t.Fatalf("Phase = %s, want ACTION", h.s.Phase)
	}
	expectCode(t, h.do(Upgrade{}), CodeInsufficientFunds)
	if h.money(0) != 40 || h.node("x").Level != 1 {
		t.Errorf("money %d level %d, want 40 and 1", h.money(0), h.node("x").Level)
	}
}

func TestUpgradeOwnProperty(t *testing.T) {
	h := newHarness(t, []int{4, 4})
	h.must(StartGame{})
	h.own("n4", "p1", 3)
	h.roll()

	h.must(Upgrade{})
	if h.node("n4").Level != 4 || h.money(0) != 850 {
		t.Errorf("level %d money %d, want 4 and 850", h.node("n4").Level, h.money(0))
	}
	h.complete()

	// p2 lands on the resort and pays the top rent.
	h.roll()
	if h.money(1) != 1000-101 {
		t.Errorf("p2 money = %d, want %d", h.money(1), 1000-101)
	}
	expectCode(t, h.do(Upgrade{}), CodeBusy)
}

func TestUpgradeRejections(t *testing.T) {
	h := newHarness(t, []int{4})
	h.must(StartGame{})
	h.roll()
	expectCode(t, h.do(Upgrade{}), CodeNotOwner)

	h.own("n4", "p1", 4)
	expectCode(t, h.do(Upgrade{}), CodeMaxLevel)
	if h.s.Message != "Max level reached!" {
		t.Errorf("Message = %q", h.s.Message)
	}
}

func TestRentSettlement(t *testing.T) {
	h := newHarness(t, []int{4})
	h.must(StartGame{})
	h.own("n4", "p2", 2)
	h.roll()

	if h.money(0) != 955 || h.money(1) != 1045 {
		t.Errorf("balances %d/%d, want 955/1045", h.money(0), h.money(1))
	}
	if h.s.Phase != PhaseAction || h.s.Pending == nil || h.s.Pending.Kind != TimedSettle {
		t.Fatalf("phase %s pending %+v, want ACTION with a settle", h.s.Phase, h.s.Pending)
	}
	if h.s.Pending.Duration != 3*time.Second {
		t.Errorf("settle = %v, want 3s", h.s.Pending.Duration)
	}
	if !strings.Contains(h.s.Message, "45€") {
		t.Errorf("Message = %q, want 45€ rent", h.s.Message)
	}

	expectCode(t, h.do(Buy{}), CodeBusy)
	h.complete()
	if h.s.TurnIndex != 1 {
		t.Errorf("TurnIndex = %d, want 1", h.s.TurnIndex)
	}
}

func TestRentBankruptcyEndsGame(t *testing.T) {
	h := newHarness(t, []int{4})
	h.must(StartGame{})
	h.own("n4", "p2", 1)
	h.set(func(s *State) { s.Players[0].Money = 10 })
	h.roll()

	if h.s.Phase != PhaseGameOver {
		t.Fatalf("Phase = %s, want GAME_OVER", h.s.Phase)
	}
	r := h.s.Result
	if r == nil || r.Reason != ReasonBankruptcy || r.BankruptID != "p1" || r.WinnerID != "p2" {
		t.Fatalf("Result = %+v", r)
	}
	if h.money(0) != -20 || h.money(1) != 1030 {
		t.Errorf("balances %d/%d", h.money(0), h.money(1))
	}
	if h.s.Pending != nil {
		t.Error("no timer should survive game over")
	}

	frozen := h.s
	for _, a := range []Action{RequestRoll{}, SkipAction{}, EndTurn{}, AddPlayer{}, CompleteTimed{Seq: frozen.TimerSeq}} {
		expectCode(t, h.do(a), CodeGameOver)
	}
	if h.s.Phase != PhaseGameOver || h.money(0) != -20 || h.s.TurnIndex != frozen.TurnIndex {
		t.Error("state changed after game over")
	}
}

func TestWeddingCardConservesMoney(t *testing.T) {
	wedding := deck.Card{
		ID: "wedding", Title: "The Village Wedding", Tone: deck.ToneGood,
		Effect: deck.EffectMoney, Target: deck.TargetAllOthers, Value: 50,
	}
	h := newHarness(t, []int{5}, withCards(wedding), withPlayers("Ariadne", "Nikos", "Eleni"))
	h.must(StartGame{})
	h.roll()
	h.must(ChooseDirection{NodeID: "sea"})
	h.walk()

	if h.s.Phase != PhaseEvent || h.s.DrawnCard == nil || h.s.DrawnCard.ID != "wedding" {
		t.Fatalf("phase %s card %+v", h.s.Phase, h.s.DrawnCard)
	}
	if h.money(0) != 1100 || h.money(1) != 950 || h.money(2) != 950 {
		t.Errorf("balances %d/%d/%d, want 1100/950/950", h.money(0), h.money(1), h.money(2))
	}
	if !strings.Contains(h.s.Message, "Ariadne collects 100€") {
		t.Errorf("Message = %q", h.s.Message)
	}
	if sum := h.money(0) + h.money(1) + h.money(2); sum != 3000 {
		t.Errorf("total = %d, want 3000", sum)
	}

	expectCode(t, h.do(SkipAction{}), CodeWrongPhase)
	h.must(DismissEvent{})
	if h.s.DrawnCard != nil || h.s.TurnIndex != 1 || h.s.Phase != PhaseRolling {
		t.Errorf("after dismiss: card %v turn %d phase %s", h.s.DrawnCard, h.s.TurnIndex, h.s.Phase)
	}
}

func TestEventCardBankruptcy(t *testing.T) {
	bill := deck.Card{ID: "bill", Title: "Taverna Bill", Effect: deck.EffectMoney, Target: deck.TargetSelf, Value: -150}
	h := newHarness(t, []int{5}, withCards(bill))
	h.must(StartGame{})
	h.set(func(s *State) { s.Players[0].Money = 100 })
	h.roll()
	h.must(ChooseDirection{NodeID: "sea"})
	h.walk()

	if h.s.Phase != PhaseGameOver || h.s.Result.BankruptID != "p1" {
		t.Errorf("phase %s result %+v, want p1 bankrupt", h.s.Phase, h.s.Result)
	}
}

func TestJailAndWeatherCards(t *testing.T) {
	strike := deck.Card{ID: "strike", Title: "Ferry Strike", Effect: deck.EffectJail, JailReason: entity.JailStrike}
	h := newHarness(t, []int{5}, withCards(strike))
	h.must(StartGame{})
	h.roll()
	h.must(ChooseDirection{NodeID: "sea"})
	h.walk()

	p := h.s.Players[0]
	if !p.Jailed || p.JailReason != entity.JailStrike {
		t.Errorf("player = %+v, want jailed by strike", p)
	}

	gale := deck.Card{ID: "gale", Title: "The Gale", Effect: deck.EffectWeather, Target: deck.TargetAll}
	h = newHarness(t, []int{5}, withCards(gale))
	h.must(StartGame{})
	h.roll()
	h.must(ChooseDirection{NodeID: "sea"})
	h.walk()
	if h.s.Weather != weather.Gale {
		t.Errorf("Weather = %s, want GALE", h.s.Weather)
	}
}

func TestJailedRollStillStuck(t *testing.T) {
	h := newHarness(t, []int{3})
	h.must(StartGame{})
	h.set(func(s *State) { s.Players[0].Jail(entity.JailTraffic) })

	h.must(RequestRoll{})
	if !strings.Contains(h.s.Message, "traffic") {
		t.Errorf("Message = %q", h.s.Message)
	}
	d := h.complete()
	if d.Scheduled == nil || d.Scheduled.Kind != TimedSettle || d.Scheduled.Duration != 2*time.Second {
		t.Fatalf("Scheduled = %+v, want a 2s settle", d.Scheduled)
	}
	if h.position(0) != "home" || !h.s.Players[0].Jailed || h.s.Phase != PhaseRolling {
		t.Errorf("jailed player moved or was freed: %+v", h.s.Players[0])
	}
	expectCode(t, h.do(RequestRoll{}), CodeBusy)

	h.complete()
	if h.s.TurnIndex != 1 || !h.s.Players[0].Jailed {
		t.Errorf("turn %d jailed %v, want turn passed and still jailed", h.s.TurnIndex, h.s.Players[0].Jailed)
	}
}

func TestJailedSixFreesAndMovesFullRoll(t *testing.T) {
	h := newHarness(t, []int{6})
	h.must(StartGame{})
	h.set(func(s *State) {
		s.Players[0].Jail(entity.JailStrike)
		s.Weather = weather.Gale
	})

	h.roll()
	if h.s.Players[0].Jailed {
		t.Error("a six should free the player")
	}
	if h.s.Phase != PhaseChoosingPath || h.position(0) != "n4" || h.s.RemainingSteps != 2 {
		t.Errorf("phase %s at %s with %d left, want CHOOSING_PATH at n4 with 2",
			h.s.Phase, h.position(0), h.s.RemainingSteps)
	}
}

func TestPayBail(t *testing.T) {
	h := newHarness(t, []int{2})
	h.must(StartGame{})

	expectCode(t, h.do(PayBail{}), CodeNotJailed)

	h.set(func(s *State) {
		s.Players[0].Jail(entity.JailTraffic)
		s.Players[0].Money = 30
	})
	expectCode(t, h.do(PayBail{}), CodeInsufficientFunds)
	if !h.s.Players[0].Jailed || h.money(0) != 30 {
		t.Error("failed bail changed the player")
	}

	h.set(func(s *State) { s.Players[0].Money = 1000 })
	d := h.must(PayBail{})
	if h.money(0) != 950 || h.s.Players[0].Jailed {
		t.Errorf("after bail: money %d jailed %v", h.money(0), h.s.Players[0].Jailed)
	}
	if d.Scheduled == nil || d.Scheduled.Kind != TimedRoll {
		t.Fatalf("bail should roll immediately, Scheduled = %+v", d.Scheduled)
	}
	h.walk()
	if h.position(0) != "n2" {
		t.Errorf("position = %s, want n2", h.position(0))
	}
}

func TestDayAdvancesOnlyOnWrap(t *testing.T) {
	h := newHarness(t, []int{4, 4, 4}, withPlayers("Ariadne", "Nikos", "Eleni"))
	h.must(StartGame{})

	for turn := 0; turn < 3; turn++ {
		if h.s.TurnIndex != turn || h.s.Day != 1 {
			t.Fatalf("turn %d: TurnIndex %d Day %d", turn, h.s.TurnIndex, h.s.Day)
		}
		h.roll()
		h.must(SkipAction{})
	}

	if h.s.TurnIndex != 0 || h.s.Day != 2 {
		t.Errorf("after a round: TurnIndex %d Day %d, want 0 and 2", h.s.TurnIndex, h.s.Day)
	}
	if !strings.Contains(h.s.Message, "Ariadne's turn") {
		t.Errorf("Message = %q", h.s.Message)
	}
}

func TestWeatherDrawnForFinishedDay(t *testing.T) {
	tests := []struct {
		day  int
		want weather.Mode
	}{
		{9, weather.Clear},  // day 9 is off season
		{10, weather.Gale},  // day 10 opens the gale window
		{20, weather.Gale},  // last day of the window
		{21, weather.Clear}, // season over
	}

	for _, tt := range tests {
		h := newHarness(t, nil)
		h.must(StartGame{})
		h.set(func(s *State) {
			s.Day = tt.day
			s.TurnIndex = len(s.Players) - 1
		})
		h.rng.Floats = []float64{0.3, 0.9}

		h.eng.endTurn(&h.s, "")
		if h.s.Day != tt.day+1 || h.s.Weather != tt.want {
			t.Errorf("after day %d: day %d weather %s, want %d %s", tt.day, h.s.Day, h.s.Weather, tt.day+1, tt.want)
		}
	}
}

func TestMoneyCardMessages(t *testing.T) {
	actor := entity.Player{ID: "p1", Name: "Ariadne"}
	tests := []struct {
		name string
		res  deck.EffectResult
		want string
	}{
		{"gain", deck.EffectResult{Deltas: map[string]int{"p1": 1500}}, "Lottery: +1,500€ for Ariadne."},
		{"loss", deck.EffectResult{Deltas: map[string]int{"p1": -1250}}, "Lottery: -1,250€ for Ariadne."},
		{"collect", deck.EffectResult{Deltas: map[string]int{"p1": 2000}, Collected: true}, "Lottery: Ariadne collects 2,000€."},
	}

	card := deck.Card{Title: "Lottery", Effect: deck.EffectMoney}
	for _, tt := range tests {
		if got := moneyCardMessage(card, actor, tt.res); got != tt.want {
			t.Errorf("%s: moneyCardMessage() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCalendarEndDeclaresRichest(t *testing.T) {
	h := newHarness(t, []int{4, 4}, withMaxDays(1))
	h.must(StartGame{})

	h.roll()
	h.must(Buy{})
	h.complete()

	h.roll()
	if h.money(0) != 730 || h.money(1) != 970 {
		t.Fatalf("balances %d/%d, want 730/970", h.money(0), h.money(1))
	}
	h.complete()

	if h.s.Phase != PhaseGameOver {
		t.Fatalf("Phase = %s, want GAME_OVER", h.s.Phase)
	}
	if r := h.s.Result; r == nil || r.Reason != ReasonCalendar || r.WinnerID != "p2" {
		t.Errorf("Result = %+v, want calendar win for p2", h.s.Result)
	}
	if h.s.Day != 1 {
		t.Errorf("Day = %d, should not pass MaxDays", h.s.Day)
	}
	if !strings.Contains(h.s.Message, "970€") {
		t.Errorf("Message = %q", h.s.Message)
	}
}

func TestStartLandingRefillsTouristsAndPasses(t *testing.T) {
	h := newHarness(t, []int{1})
	h.must(StartGame{})
	h.set(func(s *State) {
		s.Players[0].Position = "n1"
		s.Players[0].SetTourists(0)
	})

	h.roll()
	if h.s.Phase != PhaseChoosingPath {
		t.Fatalf("Phase = %s, want a choice at n1", h.s.Phase)
	}
	h.must(ChooseDirection{NodeID: "home"})
	h.walk()

	if h.s.Players[0].Tourists != 20 {
		t.Errorf("Tourists = %d, want refill to 20", h.s.Players[0].Tourists)
	}
	if h.s.TurnIndex != 1 || h.s.Phase != PhaseRolling {
		t.Errorf("turn %d phase %s, want the turn passed", h.s.TurnIndex, h.s.Phase)
	}
	if !strings.HasPrefix(h.s.Message, "Relaxing at Home Port.") {
		t.Errorf("Message = %q", h.s.Message)
	}
}

func TestBuyFerry(t *testing.T) {
	h := newHarness(t, []int{2, 5})
	h.must(StartGame{})

	expectCode(t, h.do(BuyFerry{FerryID: "HOVERCRAFT"}), CodeUnknownFerry)
	h.must(BuyFerry{FerryID: "SPEEDBOAT"})
	p := h.s.Players[0]
	if p.Ferry != "SPEEDBOAT" || p.Money != 700 || p.Tourists != 10 {
		t.Errorf("after purchase: %+v", p)
	}
	expectCode(t, h.do(BuyFerry{FerryID: "SPEEDBOAT"}), CodeNotPurchasable)

	// Best of two: faces 2 and 5 keep the 5, and each hop takes 2s.
	h.must(RequestRoll{})
	if h.s.DiceValue != 5 {
		t.Errorf("DiceValue = %d, want 5", h.s.DiceValue)
	}
	d := h.complete()
	if d.Scheduled == nil || d.Scheduled.Duration != 2*time.Second {
		t.Errorf("transit = %+v, want 2s", d.Scheduled)
	}
	h.walk()
	h.must(ChooseDirection{NodeID: "x"})
	h.walk()
	h.must(SkipAction{})
	h.set(func(s *State) { s.Players[1].Position = "n2" })
	expectCode(t, h.do(BuyFerry{FerryID: "CARGO"}), CodeNotAtStart)
}

func TestStaleTimerIsRejected(t *testing.T) {
	h := newHarness(t, []int{4})
	h.must(StartGame{})
	expectCode(t, h.do(CompleteTimed{Seq: 1}), CodeStaleTimer)

	h.must(RequestRoll{})
	seq := h.s.Pending.Seq
	expectCode(t, h.do(CompleteTimed{Seq: seq + 7}), CodeStaleTimer)
	h.must(CompleteTimed{Seq: seq})
	expectCode(t, h.do(CompleteTimed{Seq: seq}), CodeStaleTimer)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	h := newHarness(t, []int{4})
	h.must(StartGame{})
	h.roll()

	before := h.s
	beforeMoney := before.Players[0].Money
	next, d := h.eng.Reduce(before, Buy{})
	if !d.Accepted {
		t.Fatalf("Buy rejected: %+v", d.Rejection)
	}
	if before.Players[0].Money != beforeMoney || before.Nodes[before.nodeIndex("n4")].IsOwned() {
		t.Error("Reduce mutated its input state")
	}
	if len(before.Players[0].Owned) != 0 {
		t.Error("Reduce appended to the input's owned slice")
	}
	if next.Players[0].Money != beforeMoney-300 {
		t.Errorf("next money = %d", next.Players[0].Money)
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "0€"},
		{45, "45€"},
		{1000, "1,000€"},
		{-1250, "-1,250€"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
	if got := FormatDay(12, 31); got != "Day 12/31" {
		t.Errorf("FormatDay = %q", got)
	}
}
