package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanica_agenda/internal/domain/entities"
	mock_interfaces "mecanica_agenda/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newBookingUC(repo *mock_interfaces.MockIBookingRepository) *BookingUseCase {
	return NewBookingUseCase(repo, nil, nil, zerolog.Nop())
}

func validCreateInput() CreateBookingInput {
	return CreateBookingInput{
		CustomerID: "cust-1",
		WorkshopID: "ws-1",
		Vehicle:    entities.VehicleRef{Make: "Fiat", Model: "Punto"},
		Service:    entities.ServiceRef{CatalogID: "svc-1", Name: "Oil change"},
	}
}

func TestBookingUseCase_CreateBookingRequest_Validations(t *testing.T) {
	t.Run("empty customer id", func(t *testing.T) {
		uc := newBookingUC(nil)
		in := validCreateInput()
		in.CustomerID = "  "
		_, err := uc.CreateBookingRequest(context.Background(), in)
		if !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("empty workshop id", func(t *testing.T) {
		uc := newBookingUC(nil)
		in := validCreateInput()
		in.WorkshopID = ""
		_, err := uc.CreateBookingRequest(context.Background(), in)
		if !errors.Is(err, ErrInvalidWorkshop) {
			t.Fatalf("expected ErrInvalidWorkshop, got %v", err)
		}
	})

	t.Run("vehicle missing model", func(t *testing.T) {
		uc := newBookingUC(nil)
		in := validCreateInput()
		in.Vehicle.Model = " "
		_, err := uc.CreateBookingRequest(context.Background(), in)
		if !errors.Is(err, ErrInvalidVehicle) {
			t.Fatalf("expected ErrInvalidVehicle, got %v", err)
		}
	})

	t.Run("neither service nor problem description", func(t *testing.T) {
		uc := newBookingUC(nil)
		in := validCreateInput()
		in.Service = entities.ServiceRef{}
		in.ProblemDescription = "   "
		_, err := uc.CreateBookingRequest(context.Background(), in)
		if !errors.Is(err, ErrMissingServiceInfo) {
			t.Fatalf("expected ErrMissingServiceInfo, got %v", err)
		}
	})

	t.Run("problem description alone is enough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
				return b, nil
			})
		uc := newBookingUC(repo)

		in := validCreateInput()
		in.Service = entities.ServiceRef{}
		in.ProblemDescription = "strange noise from the front left wheel"
		if _, err := uc.CreateBookingRequest(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("too many preferred dates", func(t *testing.T) {
		uc := newBookingUC(nil)
		in := validCreateInput()
		d := time.Now().UTC()
		in.PreferredDates = []time.Time{d, d.AddDate(0, 0, 1), d.AddDate(0, 0, 2), d.AddDate(0, 0, 3)}
		_, err := uc.CreateBookingRequest(context.Background(), in)
		if !errors.Is(err, ErrTooManyPreferredDates) {
			t.Fatalf("expected ErrTooManyPreferredDates, got %v", err)
		}
	})
}

func TestBookingUseCase_CreateBookingRequest_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBookingRepository(ctrl)

	var stored entities.BookingRequest
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
			stored = b
			return b, nil
		})
	uc := newBookingUC(repo)

	created, err := uc.CreateBookingRequest(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Status != entities.BookingStatusPending {
		t.Fatalf("expected pending status, got %s", created.Status)
	}
	if created.Type != entities.BookingTypeRoutine {
		t.Fatalf("expected routine type default, got %s", created.Type)
	}
	if created.Urgency != entities.UrgencyMedium {
		t.Fatalf("expected medium urgency default, got %s", created.Urgency)
	}
	if created.Version != 1 {
		t.Fatalf("expected version 1, got %d", created.Version)
	}
	if stored.Proposals == nil || stored.Messages == nil {
		t.Fatal("expected proposals and messages initialized to empty slices")
	}
}

func TestBookingUseCase_CreateBookingRequest_CounterFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBookingRepository(ctrl)
	directory := mock_interfaces.NewMockIWorkshopDirectory(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
			return b, nil
		})
	directory.EXPECT().IncrementBookingCount(gomock.Any(), "ws-1").Return(errors.New("dynamo down"))

	uc := NewBookingUseCase(repo, directory, nil, zerolog.Nop())
	if _, err := uc.CreateBookingRequest(context.Background(), validCreateInput()); err != nil {
		t.Fatalf("directory failure must not fail the booking, got %v", err)
	}
}

func TestBookingUseCase_AddProposal(t *testing.T) {
	date := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	t.Run("invalid sender role", func(t *testing.T) {
		uc := newBookingUC(nil)
		_, err := uc.AddProposal(context.Background(), "bk-1", ProposalInput{ProposedBy: "robot", ProposedDate: date})
		if !errors.Is(err, ErrInvalidSenderRole) {
			t.Fatalf("expected ErrInvalidSenderRole, got %v", err)
		}
	})

	t.Run("zero date", func(t *testing.T) {
		uc := newBookingUC(nil)
		_, err := uc.AddProposal(context.Background(), "bk-1", ProposalInput{ProposedBy: entities.RoleMechanic})
		if !errors.Is(err, ErrInvalidProposalDate) {
			t.Fatalf("expected ErrInvalidProposalDate, got %v", err)
		}
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.BookingRequest{}, nil)
		uc := newBookingUC(repo)

		_, err := uc.AddProposal(context.Background(), "bk-1", ProposalInput{ProposedBy: entities.RoleMechanic, ProposedDate: date})
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("terminal booking refuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.BookingRequest{ID: "bk-1", Status: entities.BookingStatusCancelled}, nil)
		uc := newBookingUC(repo)

		_, err := uc.AddProposal(context.Background(), "bk-1", ProposalInput{ProposedBy: entities.RoleUser, ProposedDate: date})
		if !errors.Is(err, ErrBookingClosed) {
			t.Fatalf("expected ErrBookingClosed, got %v", err)
		}
	})

	t.Run("appends pending proposal and moves to date_proposed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.BookingRequest{ID: "bk-1", Status: entities.BookingStatusQuoteSent}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
				return b, nil
			})
		uc := newBookingUC(repo)

		updated, err := uc.AddProposal(context.Background(), "bk-1", ProposalInput{
			ProposedBy:    entities.RoleMechanic,
			ProposedDate:  date,
			Message:       " monday works ",
			EstimatedCost: 150,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.BookingStatusDateProposed {
			t.Fatalf("expected date_proposed, got %s", updated.Status)
		}
		if len(updated.Proposals) != 1 {
			t.Fatalf("expected one proposal, got %d", len(updated.Proposals))
		}
		p := updated.Proposals[0]
		if p.Status != entities.ProposalStatusPending || p.Message != "monday works" || !p.ProposedDate.Equal(date) {
			t.Fatalf("unexpected proposal: %+v", p)
		}
	})

	t.Run("reopens a confirmed booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.BookingRequest{ID: "bk-1", Status: entities.BookingStatusConfirmed}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
				return b, nil
			})
		uc := newBookingUC(repo)

		updated, err := uc.AddProposal(context.Background(), "bk-1", ProposalInput{ProposedBy: entities.RoleUser, ProposedDate: date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.BookingStatusDateProposed {
			t.Fatalf("expected date_proposed, got %s", updated.Status)
		}
	})
}

func TestBookingUseCase_AcceptProposal(t *testing.T) {
	d1 := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 9, 11, 9, 0, 0, 0, time.UTC)

	booking := func() entities.BookingRequest {
		return entities.BookingRequest{
			ID:     "bk-1",
			Status: entities.BookingStatusDateProposed,
			Proposals: []entities.Proposal{
				{ID: "p-1", ProposedDate: d1, Status: entities.ProposalStatusPending},
				{ID: "p-2", ProposedDate: d2, Status: entities.ProposalStatusPending},
			},
		}
	}

	t.Run("proposal not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(booking(), nil)
		uc := newBookingUC(repo)

		_, err := uc.AcceptProposal(context.Background(), "bk-1", "nope")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("accepts one and rejects the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(booking(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
				return b, nil
			})
		uc := newBookingUC(repo)

		updated, err := uc.AcceptProposal(context.Background(), "bk-1", "p-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.BookingStatusConfirmed {
			t.Fatalf("expected confirmed, got %s", updated.Status)
		}
		if updated.SelectedDate == nil || !updated.SelectedDate.Equal(d2) {
			t.Fatalf("expected selected date %v, got %v", d2, updated.SelectedDate)
		}
		if updated.Proposals[0].Status != entities.ProposalStatusRejected {
			t.Fatalf("expected p-1 rejected, got %s", updated.Proposals[0].Status)
		}
		if updated.Proposals[1].Status != entities.ProposalStatusAccepted {
			t.Fatalf("expected p-2 accepted, got %s", updated.Proposals[1].Status)
		}
	})
}

func TestBookingUseCase_CounterPropose(t *testing.T) {
	d1 := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)

	t.Run("rejected proposal not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.BookingRequest{ID: "bk-1", Status: entities.BookingStatusDateProposed}, nil)
		uc := newBookingUC(repo)

		_, err := uc.CounterPropose(context.Background(), "bk-1", "p-1", ProposalInput{ProposedBy: entities.RoleUser, ProposedDate: d2})
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("marks countered and appends pending in one write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.BookingRequest{
			ID:     "bk-1",
			Status: entities.BookingStatusDateProposed,
			Proposals: []entities.Proposal{
				{ID: "p-1", ProposedDate: d1, Status: entities.ProposalStatusPending},
			},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
				return b, nil
			})
		uc := newBookingUC(repo)

		updated, err := uc.CounterPropose(context.Background(), "bk-1", "p-1", ProposalInput{ProposedBy: entities.RoleUser, ProposedDate: d2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Proposals) != 2 {
			t.Fatalf("expected two proposals, got %d", len(updated.Proposals))
		}
		if updated.Proposals[0].Status != entities.ProposalStatusCounterProposed {
			t.Fatalf("expected p-1 counter_proposed, got %s", updated.Proposals[0].Status)
		}
		if updated.Proposals[1].Status != entities.ProposalStatusPending {
			t.Fatalf("expected new proposal pending, got %s", updated.Proposals[1].Status)
		}
		if updated.Status != entities.BookingStatusDateProposed {
			t.Fatalf("counter proposal must not change booking status, got %s", updated.Status)
		}
	})
}

func TestBookingUseCase_Messages(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		uc := newBookingUC(nil)
		_, err := uc.AddMessage(context.Background(), "bk-1", MessageInput{SenderID: "u-1", SenderRole: entities.RoleUser, Text: "   "})
		if !errors.Is(err, ErrEmptyMessageText) {
			t.Fatalf("expected ErrEmptyMessageText, got %v", err)
		}
	})

	t.Run("append message unread", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.BookingRequest{ID: "bk-1", Status: entities.BookingStatusPending}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
				return b, nil
			})
		uc := newBookingUC(repo)

		updated, err := uc.AddMessage(context.Background(), "bk-1", MessageInput{SenderID: "u-1", SenderRole: entities.RoleUser, Text: " hello "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Messages) != 1 || updated.Messages[0].IsRead || updated.Messages[0].Text != "hello" {
			t.Fatalf("unexpected messages: %+v", updated.Messages)
		}
	})

	t.Run("mark read skips own messages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.BookingRequest{
			ID:     "bk-1",
			Status: entities.BookingStatusPending,
			Messages: []entities.Message{
				{ID: "m-1", SenderID: "u-1"},
				{ID: "m-2", SenderID: "mech-1"},
			},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
				return b, nil
			})
		uc := newBookingUC(repo)

		updated, err := uc.MarkMessagesAsRead(context.Background(), "bk-1", "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Messages[0].IsRead {
			t.Fatal("reader's own message must stay untouched")
		}
		if !updated.Messages[1].IsRead {
			t.Fatal("other party's message must be read")
		}
	})

	t.Run("mark read is idempotent, no write when unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.BookingRequest{
			ID:       "bk-1",
			Status:   entities.BookingStatusPending,
			Messages: []entities.Message{{ID: "m-1", SenderID: "mech-1", IsRead: true}},
		}, nil)
		uc := newBookingUC(repo)

		if _, err := uc.MarkMessagesAsRead(context.Background(), "bk-1", "u-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := newBookingUC(nil)
		_, err := uc.UpdateStatus(context.Background(), "bk-1", "nonsense")
		if !errors.Is(err, ErrUnknownBookingStatus) {
			t.Fatalf("expected ErrUnknownBookingStatus, got %v", err)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.BookingRequest{ID: "bk-1", Status: entities.BookingStatusPending}, nil)
		uc := newBookingUC(repo)

		_, err := uc.UpdateStatus(context.Background(), "bk-1", entities.BookingStatusCompleted)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("completion stamps completed_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.BookingRequest{ID: "bk-1", Status: entities.BookingStatusInProgress}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
				return b, nil
			})
		uc := newBookingUC(repo)

		updated, err := uc.UpdateStatus(context.Background(), "bk-1", entities.BookingStatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.CompletedAt == nil {
			t.Fatal("expected completed_at to be set")
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.BookingRequest{}, errors.New("dynamo down"))
		uc := newBookingUC(repo)

		if _, err := uc.UpdateStatus(context.Background(), "bk-1", entities.BookingStatusCancelled); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestBookingUseCase_Lists(t *testing.T) {
	t.Run("empty customer id", func(t *testing.T) {
		uc := newBookingUC(nil)
		if _, err := uc.ListByCustomerID(context.Background(), " "); !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("empty workshop id", func(t *testing.T) {
		uc := newBookingUC(nil)
		if _, err := uc.ListByWorkshopID(context.Background(), ""); !errors.Is(err, ErrInvalidWorkshop) {
			t.Fatalf("expected ErrInvalidWorkshop, got %v", err)
		}
	})

	t.Run("delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		repo.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.BookingRequest{{ID: "bk-1"}}, nil)
		uc := newBookingUC(repo)

		got, err := uc.ListByCustomerID(context.Background(), "cust-1")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}
