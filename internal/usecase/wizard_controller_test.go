package usecase

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"estimate_wizard/internal/adapter/persistence/repository"
	"estimate_wizard/internal/domain/catalog"
	"estimate_wizard/internal/domain/entities"
	"estimate_wizard/internal/usecase/interfaces"
	mock_interfaces "estimate_wizard/internal/usecase/interfaces/mocks"
	"estimate_wizard/internal/usecase/validation"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func testRules() *validation.Rules {
	return validation.New(validation.WithClock(func() time.Time { return testNow }))
}

func newTestController(t *testing.T, medium interfaces.IDraftMedium, submitter interfaces.IEstimateSubmitter, opts ...ControllerOption) *Controller {
	t.Helper()
	opts = append([]ControllerOption{
		WithControllerClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string { return "est-1" }),
	}, opts...)
	return NewController(context.Background(), "sess-1", catalog.Default(), testRules(), NewDraftStore(medium, "sess-1"), submitter, opts...)
}

func mustNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func fillVehicle(t *testing.T, c *Controller) {
	t.Helper()
	ctx := context.Background()
	mustNil(t, c.SetVehicleYear(ctx, 2022))
	mustNil(t, c.SetVehicleMake(ctx, "BMW"))
	mustNil(t, c.SetVehicleModel(ctx, "M3"))
	mustNil(t, c.SetVehicleColor(ctx, "Black"))
	mustNil(t, c.SetVehicleCondition(ctx, entities.VehicleConditionGood))
}

func fillContact(t *testing.T, c *Controller) {
	t.Helper()
	ctx := context.Background()
	mustNil(t, c.SetContactName(ctx, "Jordan Lee"))
	mustNil(t, c.SetContactEmail(ctx, "jordan@example.com"))
	mustNil(t, c.SetContactPhone(ctx, "555-123-4567"))
	mustNil(t, c.SetPreferredContactMethod(ctx, entities.ContactMethodEmail))
	mustNil(t, c.SetTimeframe(ctx, entities.TimeframeWeek))
}

// walkToReview fills every step and leaves the wizard on step 4.
func walkToReview(t *testing.T, c *Controller) {
	t.Helper()
	ctx := context.Background()
	fillVehicle(t, c)
	mustNil(t, c.ToggleService(ctx, catalog.ServiceExteriorDetailing))
	mustNil(t, c.ToggleService(ctx, catalog.ServiceCeramicCoating))
	fillContact(t, c)
	for i := 0; i < 3; i++ {
		res, err := c.GoNext(ctx)
		mustNil(t, err)
		if !res.Advanced {
			t.Fatalf("expected to advance from step %d, errors=%v", res.Step, res.Errors)
		}
	}
	if got := c.Snapshot().State.CurrentStep; got != entities.LastStep {
		t.Fatalf("expected step 4, got %d", got)
	}
}

func TestController_MountRestoresDraft(t *testing.T) {
	ctx := context.Background()
	medium := repository.NewDraftMemoryRepository()
	want := sampleState()
	mustNil(t, NewDraftStore(medium, "sess-1").Save(ctx, want))

	c := newTestController(t, medium, nil)
	if got := c.Snapshot().State; !reflect.DeepEqual(got, want) {
		t.Fatalf("draft not restored:\n got %+v\nwant %+v", got, want)
	}
}

func TestController_MountWithoutDraft(t *testing.T) {
	c := newTestController(t, repository.NewDraftMemoryRepository(), nil)
	snap := c.Snapshot()
	if !reflect.DeepEqual(snap.State, entities.NewWizardState()) {
		t.Fatalf("expected empty state, got %+v", snap.State)
	}
	if snap.EstimatedPrice != 0 {
		t.Fatalf("expected 0 price, got %v", snap.EstimatedPrice)
	}
	if len(snap.Recommended) != len(catalog.DefaultServices()) {
		t.Fatalf("expected full catalog in recommendations, got %d", len(snap.Recommended))
	}
}

func TestController_StepGates(t *testing.T) {
	ctx := context.Background()

	t.Run("step 1 blocks on empty vehicle", func(t *testing.T) {
		c := newTestController(t, repository.NewDraftMemoryRepository(), nil)
		res, err := c.GoNext(ctx)
		mustNil(t, err)
		if res.Advanced || res.Step != 1 {
			t.Fatalf("expected to stay on step 1, got %+v", res)
		}
		for _, k := range []string{"year", "make", "model", "color", "condition"} {
			if _, ok := res.Errors[k]; !ok {
				t.Fatalf("expected error on %q, got %v", k, res.Errors)
			}
		}
		if len(c.Snapshot().Errors) != 5 {
			t.Fatalf("expected errors on the snapshot, got %v", c.Snapshot().Errors)
		}
	})

	t.Run("step 2 requires a service even with a package", func(t *testing.T) {
		c := newTestController(t, repository.NewDraftMemoryRepository(), nil)
		fillVehicle(t, c)
		_, _ = c.GoNext(ctx)
		mustNil(t, c.SelectPackage(ctx, catalog.PackageSignature))

		res, err := c.GoNext(ctx)
		mustNil(t, err)
		if res.Advanced {
			t.Fatalf("expected to stay on step 2")
		}
		if res.Errors[validation.KeyServices] != "Please select at least one service" {
			t.Fatalf("unexpected errors: %v", res.Errors)
		}

		mustNil(t, c.ToggleService(ctx, catalog.ServiceOdorRemoval))
		res, err = c.GoNext(ctx)
		mustNil(t, err)
		if !res.Advanced || res.Step != 3 || len(res.Errors) != 0 {
			t.Fatalf("expected to advance to step 3, got %+v", res)
		}
		if len(c.Snapshot().Errors) != 0 {
			t.Fatalf("errors must clear on advance")
		}
	})

	t.Run("step 3 always advances", func(t *testing.T) {
		c := newTestController(t, repository.NewDraftMemoryRepository(), nil)
		fillVehicle(t, c)
		mustNil(t, c.ToggleService(ctx, catalog.ServiceOdorRemoval))
		_, _ = c.GoNext(ctx)
		_, _ = c.GoNext(ctx)

		res, err := c.GoNext(ctx)
		mustNil(t, err)
		if !res.Advanced || res.Step != 4 {
			t.Fatalf("expected step 4, got %+v", res)
		}
	})

	t.Run("next on the last step is a no-op", func(t *testing.T) {
		c := newTestController(t, repository.NewDraftMemoryRepository(), nil)
		walkToReview(t, c)
		res, err := c.GoNext(ctx)
		mustNil(t, err)
		if res.Advanced || res.Step != 4 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestController_GoPrevious(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, repository.NewDraftMemoryRepository(), nil)

	mustNil(t, c.GoPrevious(ctx))
	if got := c.Snapshot().State.CurrentStep; got != 1 {
		t.Fatalf("step 1 is the floor, got %d", got)
	}

	walkToReview(t, c)
	mustNil(t, c.SetContactEmail(ctx, "broken"))
	mustNil(t, c.GoPrevious(ctx))
	if got := c.Snapshot().State.CurrentStep; got != 3 {
		t.Fatalf("previous must not validate, got step %d", got)
	}
}

func TestController_ToggleAndPackage(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, repository.NewDraftMemoryRepository(), nil)

	mustNil(t, c.ToggleService(ctx, catalog.ServiceExteriorDetailing))
	mustNil(t, c.ToggleService(ctx, catalog.ServiceInteriorDetailing))
	mustNil(t, c.ToggleService(ctx, catalog.ServiceExteriorDetailing))
	if got := c.Snapshot().State.Services; !reflect.DeepEqual(got, []string{catalog.ServiceInteriorDetailing}) {
		t.Fatalf("unexpected services: %v", got)
	}
	if got := c.Snapshot().EstimatedPrice; got != 300 {
		t.Fatalf("expected 300, got %v", got)
	}

	mustNil(t, c.SelectPackage(ctx, catalog.PackageEssential))
	snap := c.Snapshot()
	if snap.EstimatedPrice != 499 {
		t.Fatalf("package price must win, got %v", snap.EstimatedPrice)
	}
	if len(snap.State.Services) != 1 {
		t.Fatalf("services must be retained with a package, got %v", snap.State.Services)
	}

	mustNil(t, c.ClearPackage(ctx))
	if got := c.Snapshot().EstimatedPrice; got != 300 {
		t.Fatalf("expected 300 after clearing the package, got %v", got)
	}

	mustNil(t, c.SetServices(ctx, []string{"a", "b", "a"}))
	if got := c.Snapshot().State.Services; !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("expected duplicates dropped, got %v", got)
	}
}

func TestController_EagerValidation(t *testing.T) {
	ctx := context.Background()

	c := newTestController(t, repository.NewDraftMemoryRepository(), nil)
	mustNil(t, c.SetVehicleMake(ctx, "BMW"))
	if len(c.Snapshot().Errors) != 0 {
		t.Fatalf("lazy mode must not validate on change")
	}

	c = newTestController(t, repository.NewDraftMemoryRepository(), nil, WithEagerValidation(true))
	mustNil(t, c.SetVehicleMake(ctx, "BMW"))
	errs := c.Snapshot().Errors
	if _, ok := errs["make"]; ok {
		t.Fatalf("make is filled, got %v", errs)
	}
	if _, ok := errs["year"]; !ok {
		t.Fatalf("expected live error on year, got %v", errs)
	}
}

func TestController_DraftFollowsEveryChange(t *testing.T) {
	ctx := context.Background()
	medium := repository.NewDraftMemoryRepository()
	c := newTestController(t, medium, nil)

	mustNil(t, c.SetVehicleMake(ctx, "Porsche"))
	got, ok := NewDraftStore(medium, "sess-1").Load(ctx)
	if !ok || got.Vehicle.Make != "Porsche" {
		t.Fatalf("expected draft with make, got %+v ok=%v", got, ok)
	}
}

func TestController_DraftWriteFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	medium := mock_interfaces.NewMockIDraftMedium(ctrl)
	medium.EXPECT().Get(gomock.Any(), "estimate-form-draft:sess-1").Return("", false, nil)
	medium.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("quota exceeded"))

	c := newTestController(t, medium, nil)
	mustNil(t, c.SetVehicleMake(context.Background(), "Audi"))
	if got := c.Snapshot().State.Vehicle.Make; got != "Audi" {
		t.Fatalf("in-memory state must be updated, got %q", got)
	}
}

func TestController_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("only from the last step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		submitter := mock_interfaces.NewMockIEstimateSubmitter(ctrl)

		c := newTestController(t, repository.NewDraftMemoryRepository(), submitter)
		if _, err := c.Submit(ctx); !errors.Is(err, ErrNotOnFinalStep) {
			t.Fatalf("expected ErrNotOnFinalStep, got %v", err)
		}
	})

	t.Run("invalid record never reaches the boundary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		submitter := mock_interfaces.NewMockIEstimateSubmitter(ctrl)

		c := newTestController(t, repository.NewDraftMemoryRepository(), submitter)
		walkToReview(t, c)
		mustNil(t, c.SetContactPhone(ctx, "123"))

		if _, err := c.Submit(ctx); !errors.Is(err, ErrRecordInvalid) {
			t.Fatalf("expected ErrRecordInvalid, got %v", err)
		}
		snap := c.Snapshot()
		if _, ok := snap.Errors["phone"]; !ok {
			t.Fatalf("expected phone error, got %v", snap.Errors)
		}
		if snap.State.Status != entities.WizardStatusEditing {
			t.Fatalf("expected editing, got %q", snap.State.Status)
		}
	})

	t.Run("success clears the draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		submitter := mock_interfaces.NewMockIEstimateSubmitter(ctrl)
		medium := repository.NewDraftMemoryRepository()

		c := newTestController(t, medium, submitter)
		walkToReview(t, c)

		want := entities.EstimateRecord{
			ID:        "est-1",
			SessionID: "sess-1",
			Vehicle: entities.VehicleInfo{
				Year: 2022, Make: "BMW", Model: "M3", Color: "Black", Condition: entities.VehicleConditionGood,
			},
			Services: []string{catalog.ServiceExteriorDetailing, catalog.ServiceCeramicCoating},
			Contact: entities.ContactInfo{
				Name:                   "Jordan Lee",
				Email:                  "jordan@example.com",
				Phone:                  "555-123-4567",
				PreferredContactMethod: entities.ContactMethodEmail,
				Timeframe:              entities.TimeframeWeek,
			},
			EstimatedPrice: 850,
			Status:         entities.EstimateStatusPending,
			CreatedAt:      testNow,
		}
		submitter.EXPECT().Submit(gomock.Any(), want).Return(nil)

		rec, err := c.Submit(ctx)
		mustNil(t, err)
		if !reflect.DeepEqual(rec, want) {
			t.Fatalf("unexpected record: %+v", rec)
		}
		snap := c.Snapshot()
		if snap.State.Status != entities.WizardStatusSubmitted || snap.Record == nil || snap.Record.ID != "est-1" {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
		if _, ok, _ := medium.Get(ctx, DraftKey("sess-1")); ok {
			t.Fatalf("draft must be cleared after success")
		}

		if err := c.SetNotes(ctx, "late"); !errors.Is(err, ErrAlreadySubmitted) {
			t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
		}
		if _, err := c.Submit(ctx); !errors.Is(err, ErrAlreadySubmitted) {
			t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
		}
	})
}

func TestController_ConcurrentSubmitSendsOnce(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})
	submitter := mock_interfaces.NewMockIEstimateSubmitter(ctrl)
	submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ entities.EstimateRecord) error {
			close(started)
			<-release
			return nil
		}).
		Times(1)

	c := newTestController(t, repository.NewDraftMemoryRepository(), submitter)
	walkToReview(t, c)

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = c.Submit(ctx)
	}()
	<-started

	if got := c.Status(); got != entities.WizardStatusSubmitting {
		t.Fatalf("expected submitting, got %q", got)
	}
	before := c.Snapshot().State

	if _, err := c.Submit(ctx); !errors.Is(err, ErrSubmissionInProgress) {
		t.Fatalf("expected ErrSubmissionInProgress, got %v", err)
	}
	if err := c.SetContactName(ctx, "Someone Else"); !errors.Is(err, ErrSubmissionInProgress) {
		t.Fatalf("expected ErrSubmissionInProgress, got %v", err)
	}
	if _, err := c.GoNext(ctx); !errors.Is(err, ErrSubmissionInProgress) {
		t.Fatalf("expected ErrSubmissionInProgress, got %v", err)
	}
	if err := c.GoPrevious(ctx); !errors.Is(err, ErrSubmissionInProgress) {
		t.Fatalf("expected ErrSubmissionInProgress, got %v", err)
	}
	if err := c.Reset(ctx); !errors.Is(err, ErrResetNotAllowed) {
		t.Fatalf("expected ErrResetNotAllowed, got %v", err)
	}
	if after := c.Snapshot().State; !reflect.DeepEqual(before, after) {
		t.Fatalf("state changed while submitting:\n got %+v\nwant %+v", after, before)
	}

	close(release)
	wg.Wait()
	mustNil(t, firstErr)
	if got := c.Status(); got != entities.WizardStatusSubmitted {
		t.Fatalf("expected submitted, got %q", got)
	}
}

func TestController_SubmitFailureKeepsAnswers(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("network down")
	submitter := mock_interfaces.NewMockIEstimateSubmitter(ctrl)
	submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(boom)

	type transition struct{ from, to entities.WizardStatus }
	var seen []transition
	hook := func(from, to entities.WizardStatus) { seen = append(seen, transition{from, to}) }

	medium := repository.NewDraftMemoryRepository()
	c := newTestController(t, medium, submitter, WithStatusHook(hook))
	walkToReview(t, c)
	before := c.Snapshot().State

	_, err := c.Submit(ctx)
	if !errors.Is(err, ErrSubmissionFailed) || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped failure, got %v", err)
	}

	want := []transition{
		{entities.WizardStatusEditing, entities.WizardStatusSubmitting},
		{entities.WizardStatusSubmitting, entities.WizardStatusError},
		{entities.WizardStatusError, entities.WizardStatusEditing},
	}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("unexpected transitions: %+v", seen)
	}

	snap := c.Snapshot()
	if snap.State.Status != entities.WizardStatusEditing {
		t.Fatalf("expected editing, got %q", snap.State.Status)
	}
	if snap.SubmitError != SubmitFailureMessage || c.SubmitError() != SubmitFailureMessage {
		t.Fatalf("unexpected submit error: %q", snap.SubmitError)
	}
	if len(snap.Errors) != 0 {
		t.Fatalf("submit failure must not be a field error, got %v", snap.Errors)
	}
	if !reflect.DeepEqual(snap.State, before) {
		t.Fatalf("answers changed:\n got %+v\nwant %+v", snap.State, before)
	}
	draft, ok := NewDraftStore(medium, "sess-1").Load(ctx)
	if !ok || !reflect.DeepEqual(draft, before) {
		t.Fatalf("draft must survive the failure, got %+v ok=%v", draft, ok)
	}

	mustNil(t, c.SetNotes(ctx, "edited after failure"))
}

func TestController_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("not allowed while editing", func(t *testing.T) {
		c := newTestController(t, repository.NewDraftMemoryRepository(), nil)
		if err := c.Reset(ctx); !errors.Is(err, ErrResetNotAllowed) {
			t.Fatalf("expected ErrResetNotAllowed, got %v", err)
		}
	})

	t.Run("after success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		submitter := mock_interfaces.NewMockIEstimateSubmitter(ctrl)
		submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil)

		c := newTestController(t, repository.NewDraftMemoryRepository(), submitter)
		walkToReview(t, c)
		_, err := c.Submit(ctx)
		mustNil(t, err)

		mustNil(t, c.Reset(ctx))
		snap := c.Snapshot()
		if !reflect.DeepEqual(snap.State, entities.NewWizardState()) || snap.Record != nil {
			t.Fatalf("expected a fresh wizard, got %+v", snap)
		}
	})

	t.Run("after failure keeps the draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		submitter := mock_interfaces.NewMockIEstimateSubmitter(ctrl)
		submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

		medium := repository.NewDraftMemoryRepository()
		c := newTestController(t, medium, submitter)
		walkToReview(t, c)
		_, _ = c.Submit(ctx)
		answers := c.Snapshot().State

		mustNil(t, c.Reset(ctx))
		if c.SubmitError() != "" {
			t.Fatalf("submit error must clear")
		}
		if snap := c.Snapshot(); !reflect.DeepEqual(snap.State, entities.NewWizardState()) {
			t.Fatalf("expected a fresh wizard in memory, got %+v", snap.State)
		}
		if _, ok, _ := medium.Get(ctx, DraftKey("sess-1")); !ok {
			t.Fatalf("draft must survive a reset when nothing was submitted")
		}

		remounted := newTestController(t, medium, nil)
		if got := remounted.Snapshot().State; !reflect.DeepEqual(got, answers) {
			t.Fatalf("remount must restore the answers:\n got %+v\nwant %+v", got, answers)
		}
	})
}
