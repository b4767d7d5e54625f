package services

import (
	"strings"

	"hoteljt/dto"
	"hoteljt/errors"
	"hoteljt/models"

	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

const (
	guestListLimit = 200

	// Maximum edit distance accepted for fuzzy name suggestions.
	fuzzyDistanceLimit = 3
)

// GuestService owns the guest directory: registration, edits and search.
type GuestService struct {
	db *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{db: db}
}

// Create registers a guest. Blank optional fields are stored as NULL so the
// document uniqueness constraint ignores guests without one.
func (s *GuestService) Create(req *dto.GuestRequest) (*models.Guest, error) {
	guest := models.Guest{
		Name:     strings.TrimSpace(req.Name),
		Document: normalizeDocument(req.Document),
		Phone:    strings.TrimSpace(req.Phone),
		Email:    strings.TrimSpace(req.Email),
	}

	if err := s.checkDocumentTaken(guest.Document, 0); err != nil {
		return nil, err
	}

	if err := s.db.Create(&guest).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to create guest", err)
	}
	return &guest, nil
}

// Update edits an existing guest.
func (s *GuestService) Update(id uint, req *dto.GuestRequest) (*models.Guest, error) {
	guest, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	document := normalizeDocument(req.Document)
	if err := s.checkDocumentTaken(document, id); err != nil {
		return nil, err
	}

	guest.Name = strings.TrimSpace(req.Name)
	guest.Document = document
	guest.Phone = strings.TrimSpace(req.Phone)
	guest.Email = strings.TrimSpace(req.Email)

	if err := s.db.Save(guest).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update guest", err)
	}
	return guest, nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	err := s.db.First(&guest, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "guest not found", errors.ErrGuestNotFound)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load guest", err)
	}
	return &guest, nil
}

// Search lists guests by name ascending, capped at 200 results. A non-empty
// query filters server-side over the whole table by accent-insensitive
// substring on name and document; when nothing matches, it falls back to
// fuzzy matching over guest names so a typo still finds the registration.
func (s *GuestService) Search(query string) ([]models.Guest, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		var guests []models.Guest
		if err := s.db.Order("name ASC").Limit(guestListLimit).Find(&guests).Error; err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list guests", err)
		}
		return guests, nil
	}

	pattern := "%" + models.NormalizeName(query) + "%"

	var guests []models.Guest
	err := s.db.
		Where("search_name LIKE ? OR LOWER(document) LIKE ?", pattern, pattern).
		Order("name ASC").
		Limit(guestListLimit).
		Find(&guests).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to search guests", err)
	}

	if len(guests) == 0 {
		return s.fuzzyMatch(models.NormalizeName(query))
	}
	return guests, nil
}

// fuzzyMatch suggests guests whose normalized name is close to the query.
// Only the search keys are scanned, the matching rows are loaded after.
func (s *GuestService) fuzzyMatch(normalizedQuery string) ([]models.Guest, error) {
	var keys []struct {
		ID         uint
		SearchName string
	}
	if err := s.db.Model(&models.Guest{}).Select("id", "search_name").Find(&keys).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to search guests", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	idsByName := make(map[string][]uint, len(keys))
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, seen := idsByName[key.SearchName]; !seen {
			names = append(names, key.SearchName)
		}
		idsByName[key.SearchName] = append(idsByName[key.SearchName], key.ID)
	}

	matcher := closestmatch.New(names, []int{2, 3})

	var ids []uint
	for _, candidate := range matcher.ClosestN(normalizedQuery, 5) {
		if candidate == "" {
			continue
		}
		distance := levenshtein.DistanceForStrings([]rune(normalizedQuery), []rune(candidate), levenshtein.DefaultOptions)
		if distance <= fuzzyDistanceLimit {
			ids = append(ids, idsByName[candidate]...)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var guests []models.Guest
	err := s.db.Where("id IN ?", ids).Order("name ASC").Limit(guestListLimit).Find(&guests).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load guests", err)
	}
	return guests, nil
}

func normalizeDocument(document string) *string {
	document = strings.TrimSpace(document)
	if document == "" {
		return nil
	}
	return &document
}

func (s *GuestService) checkDocumentTaken(document *string, excludeID uint) error {
	if document == nil {
		return nil
	}

	query := s.db.Model(&models.Guest{}).Where("document = ?", *document)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to check guest document", err)
	}
	if count > 0 {
		return errors.NewAppError(errors.ErrCodeDBDuplicate, "document already registered for another guest", nil)
	}
	return nil
}
