package provider

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"memberadmin/internal/domain"
	"memberadmin/internal/eventbus"
)

// ErrAlreadyLoaded is returned by every Load call after the first
var ErrAlreadyLoaded = errors.New("members already requested")

// LoaderOptions tune the Loader boundary
type LoaderOptions struct {
	// StrictIDs drops records with a missing id and repeats of an id already seen
	StrictIDs bool
}

// Loader requests the Source Set from a provider exactly once
type Loader struct {
	provider Provider
	bus      eventbus.EventBus
	opts     LoaderOptions

	once sync.Once
}

// NewLoader creates a loader. bus may be nil.
func NewLoader(p Provider, bus eventbus.EventBus, opts LoaderOptions) *Loader {
	return &Loader{provider: p, bus: bus, opts: opts}
}

// Source returns the provider's source string
func (l *Loader) Source() string {
	return l.provider.Source()
}

// Load fetches the members. Failures are logged and published as
// LoadFailedEvent; the caller keeps its current Source Set.
func (l *Loader) Load(ctx context.Context) ([]domain.Member, error) {
	first := false
	l.once.Do(func() { first = true })
	if !first {
		return nil, ErrAlreadyLoaded
	}

	source := l.provider.Source()
	log.Printf("loader: fetching members from %s", source)

	records, err := l.provider.Fetch(ctx)
	if err != nil {
		err = fmt.Errorf("load %s: %w", source, err)
		log.Printf("loader: %v", err)
		l.publish(domain.LoadFailedEvent{Source: source, Err: err})
		return nil, err
	}

	report := Validate(records)
	for _, w := range report.Warnings {
		log.Printf("loader: warning: %s", w)
	}

	dropped := 0
	if l.opts.StrictIDs {
		dropped = len(records) - len(report.Valid)
		records = report.Valid
		if dropped > 0 {
			log.Printf("loader: dropped %d records with missing or duplicate ids", dropped)
		}
	}

	log.Printf("loader: loaded %d members", len(records))
	l.publish(domain.MembersLoadedEvent{
		Source:   source,
		Count:    len(records),
		Dropped:  dropped,
		Warnings: report.Warnings,
	})
	return records, nil
}

func (l *Loader) publish(event domain.DomainEvent) {
	if l.bus != nil {
		l.bus.Publish(event)
	}
}

// ValidationReport describes id problems found at the Loader boundary
type ValidationReport struct {
	Valid      []domain.Member // records with a present, first-seen id
	MissingIDs int
	Duplicates []string // ids seen more than once, in first-repeat order
	Warnings   []string
}

// Validate checks ids for presence and uniqueness
func Validate(records []domain.Member) ValidationReport {
	report := ValidationReport{Valid: make([]domain.Member, 0, len(records))}
	seen := make(map[string]bool, len(records))
	reported := make(map[string]bool)

	for _, r := range records {
		if !r.HasID() {
			report.MissingIDs++
			continue
		}
		if seen[r.ID] {
			if !reported[r.ID] {
				reported[r.ID] = true
				report.Duplicates = append(report.Duplicates, r.ID)
			}
			continue
		}
		seen[r.ID] = true
		report.Valid = append(report.Valid, r)
	}

	if report.MissingIDs > 0 {
		report.Warnings = append(report.Warnings, fmt.Sprintf("%d records without id", report.MissingIDs))
	}
	if len(report.Duplicates) > 0 {
		report.Warnings = append(report.Warnings, fmt.Sprintf("%d duplicate ids: %v", len(report.Duplicates), report.Duplicates))
	}
	return report
}
