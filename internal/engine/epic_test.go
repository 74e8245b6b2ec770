package engine

import "testing"

func newEpic(svc *Service, stepCount int) EpicQuest {
	in := EpicQuestInput{Title: "write a novel", FinalRewards: &Rewards{XP: 100, Diamonds: 20}}
	for i := 0; i < stepCount; i++ {
		in.Steps = append(in.Steps, EpicStepInput{Title: "chapter"})
	}
	return svc.CreateEpicQuest(in)
}

func TestEpicStepsCompleteInOrder(t *testing.T) {
	svc, _ := newTestService(t)
	eq := newEpic(svc, 3)

	// Completing a later step is a no-op.
	svc.CompleteEpicQuestStep(eq.Steps[2].ID)
	got := svc.EpicQuestView()
	if got.Steps[2].Completed {
		t.Fatalf("out-of-order step completed")
	}
	if got.CurrentStepIndex != 0 {
		t.Fatalf("CurrentStepIndex = %d, want 0", got.CurrentStepIndex)
	}

	svc.CompleteEpicQuestStep(eq.Steps[0].ID)
	got = svc.EpicQuestView()
	if !got.Steps[0].Completed || got.CurrentStepIndex != 1 {
		t.Fatalf("after first step: %+v", got)
	}
	if got := svc.EpicProgress(); got != 33 {
		t.Fatalf("progress = %d, want 33", got)
	}
}

func TestEpicFinalRewardsGrantedOnce(t *testing.T) {
	svc, _ := newTestService(t)
	startToday(t, svc)
	eq := newEpic(svc, 2)

	svc.CompleteEpicQuestStep(eq.Steps[0].ID)
	svc.CompleteEpicQuestStep(eq.Steps[1].ID)

	if got := svc.Profile().XPTotal; got != 100 {
		t.Fatalf("XP after finishing epic = %d, want 100", got)
	}
	if got := svc.Diamonds(); got != 20 {
		t.Fatalf("diamonds = %d, want 20", got)
	}

	// A reset must not re-arm the payout.
	svc.ResetEpicQuest()
	got := svc.EpicQuestView()
	if got.CurrentStepIndex != 0 {
		t.Fatalf("CurrentStepIndex after reset = %d, want 0", got.CurrentStepIndex)
	}
	svc.CompleteEpicQuestStep(got.Steps[0].ID)
	got = svc.EpicQuestView()
	svc.CompleteEpicQuestStep(got.Steps[1].ID)

	if got := svc.Profile().XPTotal; got != 100 {
		t.Fatalf("XP after farming attempt = %d, want 100", got)
	}
}

func TestEpicUpdatePreservesCompletion(t *testing.T) {
	svc, _ := newTestService(t)
	eq := newEpic(svc, 3)
	svc.CompleteEpicQuestStep(eq.Steps[0].ID)

	svc.UpdateEpicQuest(EpicQuestInput{
		Steps: []EpicStepInput{{Title: "part one"}, {Title: "part two"}, {Title: "part three"}, {Title: "epilogue"}},
	})

	got := svc.EpicQuestView()
	if len(got.Steps) != 4 {
		t.Fatalf("steps = %d, want 4", len(got.Steps))
	}
	if !got.Steps[0].Completed {
		t.Fatalf("first step lost its completion")
	}
	if got.Steps[0].Title != "part one" {
		t.Fatalf("first step title = %q, want updated", got.Steps[0].Title)
	}
	if got.CurrentStepIndex != 1 {
		t.Fatalf("CurrentStepIndex = %d, want 1", got.CurrentStepIndex)
	}
}

func TestCreateEpicReplacesExisting(t *testing.T) {
	svc, _ := newTestService(t)
	newEpic(svc, 2)
	second := svc.CreateEpicQuest(EpicQuestInput{Title: "second", Steps: []EpicStepInput{{Title: "only"}}})

	got := svc.EpicQuestView()
	if got.ID != second.ID || got.Title != "second" {
		t.Fatalf("epic quest not replaced: %+v", got)
	}
}
