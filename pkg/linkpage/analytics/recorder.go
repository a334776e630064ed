package analytics

import (
	"context"
	"errors"

	"github.com/linkpage/linkpage/pkg/linkpage/geo"
	"github.com/linkpage/linkpage/pkg/linkpage/models"
	"github.com/linkpage/linkpage/pkg/linkpage/referrer"
	"gorm.io/gorm"
)

// ErrLinkIDRequired is returned when a click arrives without a link id.
var ErrLinkIDRequired = errors.New("linkId is required")

// Recorder validates and persists individual click events, attaching the
// classified referrer and the resolved location.
type Recorder struct {
	db  *gorm.DB
	geo *geo.Resolver
}

// NewRecorder creates a click recorder
func NewRecorder(db *gorm.DB, resolver *geo.Resolver) *Recorder {
	return &Recorder{db: db, geo: resolver}
}

// Record persists exactly one click for the given link. The geolocation
// lookup is best-effort: a failed or timed-out lookup still records the
// click, just without city/country. The timestamp is assigned by the
// database at insert time.
func (r *Recorder) Record(ctx context.Context, linkID uint, rawReferrer, ip, userAgent string) (*models.Click, error) {
	if linkID == 0 {
		return nil, ErrLinkIDRequired
	}

	location := r.geo.Resolve(ctx, ip)

	click := &models.Click{
		LinkID:    linkID,
		IP:        ip,
		UserAgent: userAgent,
		Referrer:  referrer.Classify(rawReferrer),
		City:      location.City,
		Country:   location.Country,
	}

	if err := r.db.WithContext(ctx).Create(click).Error; err != nil {
		return nil, err
	}

	return click, nil
}
