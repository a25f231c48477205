package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"rental-backend/internal/importer"
	"rental-backend/internal/repositories"

	"github.com/google/uuid"
)

type ImportService struct {
	Classifier   *importer.Classifier
	PropertyRepo *repositories.PropertyRepository
	ClientRepo   *repositories.ClientRepository
	CustomerRepo *repositories.CustomerRepository
	ContractRepo *repositories.ContractRepository
}

func NewImportService(propertyRepo *repositories.PropertyRepository, clientRepo *repositories.ClientRepository, customerRepo *repositories.CustomerRepository, contractRepo *repositories.ContractRepository) *ImportService {
	return &ImportService{
		Classifier:   importer.DefaultClassifier(),
		PropertyRepo: propertyRepo,
		ClientRepo:   clientRepo,
		CustomerRepo: customerRepo,
		ContractRepo: contractRepo,
	}
}

// Classify reads a spreadsheet or JSON payload, guesses the entity type of
// each record and flags likely duplicates against the tenant's current
// data. Results are advisory; nothing is written.
func (s *ImportService) Classify(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader) ([]importer.Result, error) {
	var records []importer.Record
	var err error
	switch {
	case strings.Contains(contentType, "json"):
		records, err = importer.ReadJSON(body)
	case strings.Contains(contentType, "spreadsheet"), strings.Contains(contentType, "octet-stream"):
		records, err = importer.ReadXLSX(body)
	default:
		return nil, errors.New("unsupported content type")
	}
	if err != nil {
		return nil, err
	}

	existing, err := s.existingKeys(ctx, userID)
	if err != nil {
		return nil, err
	}

	return importer.Analyze(s.Classifier, records, existing), nil
}

// existingKeys snapshots the tenant's natural keys so the analyzer can
// flag collisions with already-persisted rows.
func (s *ImportService) existingKeys(ctx context.Context, userID uuid.UUID) (importer.KeySet, error) {
	keys := importer.KeySet{}

	properties, err := s.PropertyRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	propertyName := map[uuid.UUID]string{}
	for _, p := range properties {
		propertyName[p.ID] = p.Name
		addKeys(keys, importer.LabelProperty, importer.Record{
			"name": p.Name, "location": p.Location,
		})
	}

	clients, err := s.ClientRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	clientName := map[uuid.UUID]string{}
	for _, c := range clients {
		clientName[c.ID] = c.Name
		addKeys(keys, importer.LabelClient, importer.Record{
			"email": c.Email, "phone": c.Phone, "id_number": c.IDNumber,
		})
	}

	customers, err := s.CustomerRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		addKeys(keys, importer.LabelCustomer, importer.Record{
			"email": c.Email, "phone": c.Phone, "id_number": c.IDNumber,
		})
	}

	contracts, err := s.ContractRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range contracts {
		addKeys(keys, importer.LabelContract, importer.Record{
			"client":   clientName[c.ClientID],
			"property": propertyName[c.PropertyID],
			"unit":     c.UnitNumber,
		})
	}

	return keys, nil
}

func addKeys(keys importer.KeySet, label string, record importer.Record) {
	for _, k := range importer.NaturalKeys(label, record) {
		keys.Add(k)
	}
}
