package service

import (
	"errors"
	"fmt"

	"p9e.in/sitehub/models"
	"p9e.in/sitehub/utils"
)

// CreateSitePayload is the input for CreateSite.
type CreateSitePayload struct {
	OwnerID        string             `json:"ownerId" validate:"required"`
	Name           string             `json:"name" validate:"required"`
	Address        string             `json:"address"`
	EnrollmentCode string             `json:"enrollmentCode"`
	Location       *models.Coordinate `json:"location"`
	RadiusMeters   float64            `json:"radiusMeters"`
}

// CreateSite registers a new active site. When no enrollment code is given
// one is generated; sites with a location but no radius get the configured
// default fence.
func (s *Service) CreateSite(p CreateSitePayload) (models.Site, error) {
	if err := s.checkPayload(p); err != nil {
		return models.Site{}, err
	}
	if p.Location != nil {
		if err := utils.ValidateCoordinate(*p.Location); err != nil {
			return models.Site{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	code := utils.NormalizeSiteCode(p.EnrollmentCode)
	if code == "" {
		generated, err := s.newCode()
		if err != nil {
			return models.Site{}, err
		}
		code = generated
	}

	radius := p.RadiusMeters
	if p.Location != nil && radius <= 0 {
		radius = s.cfg.DefaultSiteRadiusMeters
	}

	site := models.Site{
		ID:             s.newID(),
		OwnerID:        p.OwnerID,
		Name:           p.Name,
		Address:        p.Address,
		Status:         models.SiteActive,
		EnrollmentCode: code,
		Location:       p.Location,
		RadiusMeters:   radius,
		CreatedAt:      s.now(),
	}

	err := s.store.Sites.Mutate(func(current []models.Site) ([]models.Site, error) {
		for _, existing := range current {
			if existing.Status == models.SiteActive && existing.EnrollmentCode == code {
				return nil, fmt.Errorf("%w: enrollment code %q already in use", ErrValidation, code)
			}
		}
		return append(append([]models.Site(nil), current...), site), nil
	})
	if err != nil {
		return models.Site{}, err
	}

	s.committed("site", site.ID, "created")
	return site, nil
}

// errCodeCollision signals that a generated code is already held by
// another active site; the caller regenerates and retries.
var errCodeCollision = errors.New("enrollment code collision")

// RotateEnrollmentCode replaces a site's enrollment code. The old code
// becomes invalid the moment the swap commits. The new code is checked
// against every other active site's code inside the same swap, so exactly
// one active site holds any code at any instant.
func (s *Service) RotateEnrollmentCode(siteID string) (models.Site, error) {
	var updated models.Site
	for attempt := 0; attempt < 5; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return models.Site{}, err
		}

		err = s.store.Sites.Mutate(func(current []models.Site) ([]models.Site, error) {
			for _, site := range current {
				if site.ID != siteID && site.Status == models.SiteActive && site.EnrollmentCode == code {
					return nil, errCodeCollision
				}
			}
			next := make([]models.Site, len(current))
			found := false
			for i, site := range current {
				if site.ID == siteID {
					site.EnrollmentCode = code
					updated = site
					found = true
				}
				next[i] = site
			}
			if !found {
				return nil, fmt.Errorf("%w: site %s", ErrNotFound, siteID)
			}
			return next, nil
		})
		if errors.Is(err, errCodeCollision) {
			continue
		}
		if err != nil {
			return models.Site{}, err
		}

		s.committed("site", siteID, "code_rotated")
		return updated, nil
	}
	return models.Site{}, fmt.Errorf("could not allocate a unique enrollment code for site %s", siteID)
}

// SiteByID resolves one site.
func (s *Service) SiteByID(id string) (models.Site, error) {
	for _, site := range s.store.Sites.List() {
		if site.ID == id {
			return site, nil
		}
	}
	return models.Site{}, fmt.Errorf("%w: site %s", ErrNotFound, id)
}

// AllSites returns every site, for owner dashboards.
func (s *Service) AllSites() []models.Site {
	return s.store.Sites.List()
}

// SitesForUser returns the sites the user is enrolled in, resolved by id
// against the membership map.
func (s *Service) SitesForUser(userID string) []models.Site {
	ids := s.store.Memberships.SitesFor(userID)
	sites := s.store.Sites.List()
	out := make([]models.Site, 0, len(ids))
	for _, id := range ids {
		for _, site := range sites {
			if site.ID == id {
				out = append(out, site)
				break
			}
		}
	}
	return out
}

// JoinResult is the outcome of an enrollment attempt. A code that matches
// no site is a plain failure, not an error.
type JoinResult struct {
	Success bool         `json:"success"`
	Site    *models.Site `json:"site,omitempty"`
}

// JoinSiteByCode resolves an enrollment code to its site and inserts the
// membership. Joining a site the user already belongs to is a no-op that
// still reports success but does not notify.
func (s *Service) JoinSiteByCode(code, userID string) (JoinResult, error) {
	if userID == "" {
		return JoinResult{}, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	normalized := utils.NormalizeSiteCode(code)
	if normalized == "" {
		return JoinResult{}, fmt.Errorf("%w: enrollment code is required", ErrValidation)
	}

	var match *models.Site
	for _, site := range s.store.Sites.List() {
		if site.Status == models.SiteActive && site.EnrollmentCode == normalized {
			found := site
			match = &found
			break
		}
	}
	if match == nil {
		return JoinResult{Success: false}, nil
	}

	if s.store.Memberships.Add(userID, match.ID) {
		s.committed("membership", userID+":"+match.ID, "joined")
	}
	return JoinResult{Success: true, Site: match}, nil
}
