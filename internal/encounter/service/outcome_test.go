package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"pawtrol/internal/encounter/models"
	id "pawtrol/pkg/domain"
	dErrors "pawtrol/pkg/domain-errors"
	"pawtrol/pkg/platform/audit"
	"pawtrol/pkg/platform/sentinel"
)

func activeEncounter(officerID id.OfficerID, disclosed bool) *models.Encounter {
	petID := id.PetID("pet-00421")
	confidence := 92
	return &models.Encounter{
		ID:                  id.EncounterID(uuid.New()),
		OfficerID:           officerID,
		Status:              models.StatusActive,
		Outcome:             models.OutcomeNone,
		BestMatchPetID:      &petID,
		BestMatchConfidence: &confidence,
		ContactDisclosed:    disclosed,
	}
}

func (s *ServiceSuite) TestRecordOutcome_Validation() {
	ctx := context.Background()
	officerID := id.OfficerID(uuid.New())

	s.Run("unverified officer", func() {
		s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).
			Return(dErrors.New(dErrors.CodeUnverifiedOfficer, "not verified"))

		_, err := s.service.RecordOutcome(ctx, RecordOutcomeCommand{
			OfficerID:   officerID,
			EncounterID: id.EncounterID(uuid.New()),
			Outcome:     models.OutcomeShelter,
		})
		s.True(dErrors.HasCode(err, dErrors.CodeUnverifiedOfficer))
	})

	s.Run("unknown outcome", func() {
		s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)

		_, err := s.service.RecordOutcome(ctx, RecordOutcomeCommand{
			OfficerID:   officerID,
			EncounterID: id.EncounterID(uuid.New()),
			Outcome:     models.Outcome("released"),
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("none is not a terminal outcome", func() {
		s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)

		_, err := s.service.RecordOutcome(ctx, RecordOutcomeCommand{
			OfficerID:   officerID,
			EncounterID: id.EncounterID(uuid.New()),
			Outcome:     models.OutcomeNone,
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("encounter not found", func() {
		encounterID := id.EncounterID(uuid.New())
		s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)
		s.mockStore.EXPECT().FindByID(gomock.Any(), encounterID).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.RecordOutcome(ctx, RecordOutcomeCommand{
			OfficerID:   officerID,
			EncounterID: encounterID,
			Outcome:     models.OutcomeShelter,
		})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("another officer's encounter", func() {
		enc := activeEncounter(id.OfficerID(uuid.New()), true)
		s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)
		s.mockStore.EXPECT().FindByID(gomock.Any(), enc.ID).Return(enc, nil)

		_, err := s.service.RecordOutcome(ctx, RecordOutcomeCommand{
			OfficerID:   officerID,
			EncounterID: enc.ID,
			Outcome:     models.OutcomeShelter,
		})
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})
}

func (s *ServiceSuite) TestRecordOutcome_AlreadyClosed() {
	ctx := context.Background()
	officerID := id.OfficerID(uuid.New())

	s.Run("closed at read time", func() {
		enc := activeEncounter(officerID, true)
		enc.Status = models.StatusClosed
		enc.Outcome = models.OutcomeShelter

		s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)
		s.mockStore.EXPECT().FindByID(gomock.Any(), enc.ID).Return(enc, nil)

		_, err := s.service.RecordOutcome(ctx, RecordOutcomeCommand{
			OfficerID:   officerID,
			EncounterID: enc.ID,
			Outcome:     models.OutcomeOther,
		})
		s.True(dErrors.HasCode(err, dErrors.CodeEncounterAlreadyClosed))
	})

	s.Run("lost the close race", func() {
		enc := activeEncounter(officerID, true)

		s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)
		s.mockStore.EXPECT().FindByID(gomock.Any(), enc.ID).Return(enc, nil)
		s.mockStore.EXPECT().Close(gomock.Any(), enc.ID, models.OutcomeShelter, gomock.Any()).
			Return(nil, sentinel.ErrInvalidState)

		_, err := s.service.RecordOutcome(ctx, RecordOutcomeCommand{
			OfficerID:   officerID,
			EncounterID: enc.ID,
			Outcome:     models.OutcomeShelter,
		})
		s.True(dErrors.HasCode(err, dErrors.CodeEncounterAlreadyClosed))
	})
}

// Return-to-owner demands the full hand-off: a disclosed contact from the
// last scan plus both field confirmations. Any missing piece rejects with
// the same code so clients handle one failure mode.
func (s *ServiceSuite) TestRecordOutcome_RTOPreconditions() {
	ctx := context.Background()
	officerID := id.OfficerID(uuid.New())

	cases := []struct {
		name      string
		disclosed bool
		ownerID   bool
		signature bool
	}{
		{name: "no disclosed contact", disclosed: false, ownerID: true, signature: true},
		{name: "owner identity unverified", disclosed: true, ownerID: false, signature: true},
		{name: "no signature", disclosed: true, ownerID: true, signature: false},
		{name: "nothing confirmed", disclosed: false, ownerID: false, signature: false},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			enc := activeEncounter(officerID, tc.disclosed)
			s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)
			s.mockStore.EXPECT().FindByID(gomock.Any(), enc.ID).Return(enc, nil)

			_, err := s.service.RecordOutcome(ctx, RecordOutcomeCommand{
				OfficerID:         officerID,
				EncounterID:       enc.ID,
				Outcome:           models.OutcomeRTO,
				OwnerIDVerified:   tc.ownerID,
				SignatureCaptured: tc.signature,
			})
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeRTOPreconditionFailed))
		})
	}
}

func (s *ServiceSuite) TestRecordOutcome_RTOHappyPath() {
	ctx := context.Background()
	officerID := id.OfficerID(uuid.New())
	enc := activeEncounter(officerID, true)

	closedAt := time.Now()
	closed := *enc
	closed.Status = models.StatusClosed
	closed.Outcome = models.OutcomeRTO
	closed.ClosedAt = &closedAt

	s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)
	s.mockStore.EXPECT().FindByID(gomock.Any(), enc.ID).Return(enc, nil)
	s.mockStore.EXPECT().Close(gomock.Any(), enc.ID, models.OutcomeRTO, gomock.Any()).
		Return(&closed, nil)

	var emitted audit.Entry
	s.mockAudit.EXPECT().Emit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry audit.Entry) error {
			emitted = entry
			return nil
		})

	got, err := s.service.RecordOutcome(ctx, RecordOutcomeCommand{
		OfficerID:         officerID,
		EncounterID:       enc.ID,
		Outcome:           models.OutcomeRTO,
		OwnerIDVerified:   true,
		SignatureCaptured: true,
	})
	s.Require().NoError(err)
	s.Equal(models.StatusClosed, got.Status)
	s.Equal(models.OutcomeRTO, got.Outcome)
	s.NotNil(got.ClosedAt)

	s.Equal(audit.ActionOutcomeRecorded, emitted.Action)
	s.Equal(string(models.OutcomeRTO), emitted.Outcome)
	s.True(emitted.OwnerIDVerified)
	s.True(emitted.SignatureCaptured)
	s.Equal(id.PetID("pet-00421"), emitted.PetID)
}

// Shelter and other dispositions close an encounter regardless of match
// state; the hand-off confirmations are an RTO concern only.
func (s *ServiceSuite) TestRecordOutcome_ShelterWithoutMatch() {
	ctx := context.Background()
	officerID := id.OfficerID(uuid.New())
	enc := &models.Encounter{
		ID:        id.EncounterID(uuid.New()),
		OfficerID: officerID,
		Status:    models.StatusActive,
		Outcome:   models.OutcomeNone,
	}
	closed := *enc
	closed.Status = models.StatusClosed
	closed.Outcome = models.OutcomeShelter

	s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)
	s.mockStore.EXPECT().FindByID(gomock.Any(), enc.ID).Return(enc, nil)
	s.mockStore.EXPECT().Close(gomock.Any(), enc.ID, models.OutcomeShelter, gomock.Any()).
		Return(&closed, nil)
	s.mockAudit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

	got, err := s.service.RecordOutcome(ctx, RecordOutcomeCommand{
		OfficerID:   officerID,
		EncounterID: enc.ID,
		Outcome:     models.OutcomeShelter,
	})
	s.Require().NoError(err)
	s.Equal(models.OutcomeShelter, got.Outcome)
}
