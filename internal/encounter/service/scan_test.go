package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"pawtrol/internal/encounter/models"
	"pawtrol/internal/ranking"
	"pawtrol/internal/registry"
	id "pawtrol/pkg/domain"
	dErrors "pawtrol/pkg/domain-errors"
	"pawtrol/pkg/platform/audit"
	"pawtrol/pkg/platform/sentinel"
)

func validScanCommand(officerID id.OfficerID) SubmitScanCommand {
	return SubmitScanCommand{
		OfficerID:  officerID,
		Photo:      []byte("jpeg-bytes"),
		MimeType:   "image/jpeg",
		Location:   &models.Location{Latitude: 40.0, Longitude: -74.0, Address: "5th and Main"},
		AnimalType: "dog",
	}
}

// The verification gate and the input checks must reject before any
// encounter is created or any ranking call goes out. The strict mocks make
// that assertion: no Create or Rank expectations are registered here.
func (s *ServiceSuite) TestSubmitScan_RejectsBeforeRanking() {
	ctx := context.Background()
	officerID := id.OfficerID(uuid.New())

	s.Run("unverified officer", func() {
		s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).
			Return(dErrors.New(dErrors.CodeUnverifiedOfficer, "not verified"))

		result, err := s.service.SubmitScan(ctx, validScanCommand(officerID))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnverifiedOfficer))
		s.Nil(result)
	})

	s.Run("missing photo", func() {
		s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)

		cmd := validScanCommand(officerID)
		cmd.Photo = nil
		result, err := s.service.SubmitScan(ctx, cmd)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodePhotoMissing))
		s.Nil(result)
	})

	s.Run("missing location", func() {
		s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)

		cmd := validScanCommand(officerID)
		cmd.Location = nil
		result, err := s.service.SubmitScan(ctx, cmd)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeLocationUnavailable))
		s.Nil(result)
	})
}

// A ranking outage surfaces as a network failure but the encounter already
// exists and stays active; the officer resolves it by scanning again or
// closing it manually.
func (s *ServiceSuite) TestSubmitScan_RankingFailureLeavesEncounterActive() {
	ctx := context.Background()
	officerID := id.OfficerID(uuid.New())

	s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)

	var created *models.Encounter
	s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, enc *models.Encounter) error {
			created = enc
			return nil
		})
	s.mockRanker.EXPECT().Rank(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	result, err := s.service.SubmitScan(ctx, validScanCommand(officerID))
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeScanNetworkFailure))
	s.Nil(result)

	s.Require().NotNil(created)
	s.Equal(models.StatusActive, created.Status)
	s.Equal(models.OutcomeNone, created.Outcome)
}

func (s *ServiceSuite) TestSubmitScan_NoMatches() {
	ctx := context.Background()
	officerID := id.OfficerID(uuid.New())

	s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)
	s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRanker.EXPECT().Rank(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.mockAudit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.service.SubmitScan(ctx, validScanCommand(officerID))
	s.Require().NoError(err)
	s.True(result.Success)
	s.Zero(result.MatchesFound)
	s.False(result.HighConfidenceMatch)
	s.Nil(result.OwnerContact)
	s.Contains(result.Message, "shelter")
}

// Below the threshold the officer sees the candidates but never any contact
// detail, not even a partial one.
func (s *ServiceSuite) TestSubmitScan_BelowThresholdWithholdsContact() {
	ctx := context.Background()
	officerID := id.OfficerID(uuid.New())

	candidates := []ranking.Candidate{
		{PetID: "pet-00007", Confidence: 84, Name: "Biscuit"},
		{PetID: "pet-00002", Confidence: 60, Name: "Rex"},
	}

	s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)
	s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRanker.EXPECT().Rank(gomock.Any(), gomock.Any()).Return(candidates, nil)

	var updated *models.Encounter
	s.mockStore.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, enc *models.Encounter) error {
			updated = enc
			return nil
		})
	s.mockAudit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.service.SubmitScan(ctx, validScanCommand(officerID))
	s.Require().NoError(err)
	s.Equal(2, result.MatchesFound)
	s.False(result.HighConfidenceMatch)
	s.Nil(result.OwnerContact)

	s.Require().NotNil(updated)
	s.Require().NotNil(updated.BestMatchPetID)
	s.Equal(id.PetID("pet-00007"), *updated.BestMatchPetID)
	s.False(updated.ContactDisclosed)
}

func (s *ServiceSuite) TestSubmitScan_AtThresholdDisclosesContact() {
	ctx := context.Background()
	officerID := id.OfficerID(uuid.New())
	petID := id.PetID("pet-00421")

	candidates := []ranking.Candidate{
		{PetID: petID, Confidence: 85, Name: "Mochi"},
		{PetID: "pet-00099", Confidence: 40},
	}
	contact := &registry.OwnerContact{PetID: petID, OwnerName: "J. Alvarez", Phone: "555-0142"}

	s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)
	s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRanker.EXPECT().Rank(gomock.Any(), gomock.Any()).Return(candidates, nil)
	s.mockContacts.EXPECT().FindByPet(gomock.Any(), petID).Return(contact, nil)

	var updated *models.Encounter
	s.mockStore.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, enc *models.Encounter) error {
			updated = enc
			return nil
		})

	var emitted []audit.Entry
	s.mockAudit.EXPECT().Emit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry audit.Entry) error {
			emitted = append(emitted, entry)
			return nil
		}).Times(2)

	result, err := s.service.SubmitScan(ctx, validScanCommand(officerID))
	s.Require().NoError(err)
	s.True(result.HighConfidenceMatch)
	s.Require().NotNil(result.OwnerContact)
	s.Equal("J. Alvarez", result.OwnerContact.OwnerName)

	s.Require().NotNil(updated)
	s.True(updated.ContactDisclosed)

	s.Require().Len(emitted, 2)
	s.Equal(audit.ActionScanSubmitted, emitted[0].Action)
	s.Equal(audit.ActionContactDisclosed, emitted[1].Action)
	s.True(emitted[1].ContactDisclosed)
	s.Equal(petID, emitted[1].PetID)
}

// Duplicate candidate rows from the collaborator collapse to the highest
// confidence per pet, and equal top scores resolve to the lowest pet id.
func (s *ServiceSuite) TestSubmitScan_NormalizesCollaboratorOutput() {
	ctx := context.Background()
	officerID := id.OfficerID(uuid.New())

	candidates := []ranking.Candidate{
		{PetID: "pet-00310", Confidence: 91},
		{PetID: "pet-00155", Confidence: 91},
		{PetID: "pet-00155", Confidence: 70},
	}
	s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)
	s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRanker.EXPECT().Rank(gomock.Any(), gomock.Any()).Return(candidates, nil)
	s.mockContacts.EXPECT().FindByPet(gomock.Any(), id.PetID("pet-00155")).
		Return(&registry.OwnerContact{PetID: "pet-00155", OwnerName: "P. Okafor"}, nil)
	s.mockStore.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	s.mockAudit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	result, err := s.service.SubmitScan(ctx, validScanCommand(officerID))
	s.Require().NoError(err)
	s.Equal(2, result.MatchesFound)
	s.Equal(id.PetID("pet-00155"), result.Matches[0].PetID)
	s.Equal("P. Okafor", result.OwnerContact.OwnerName)
}

// A pet the matcher returned but the registry does not know is an internal
// inconsistency, never a partial disclosure.
func (s *ServiceSuite) TestSubmitScan_MissingContactRecordFailsClosed() {
	ctx := context.Background()
	officerID := id.OfficerID(uuid.New())

	candidates := []ranking.Candidate{{PetID: "pet-00500", Confidence: 97}}

	s.mockGate.EXPECT().RequireVerified(gomock.Any(), officerID).Return(nil)
	s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRanker.EXPECT().Rank(gomock.Any(), gomock.Any()).Return(candidates, nil)
	s.mockContacts.EXPECT().FindByPet(gomock.Any(), id.PetID("pet-00500")).
		Return(nil, sentinel.ErrNotFound)

	result, err := s.service.SubmitScan(ctx, validScanCommand(officerID))
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	s.Nil(result)
}
