// Lookup table accessors.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/ayurlms/slotrack/pkg/types"
)

// lookupQueries maps the public lookup names to their table queries. All
// lookups return (code, full form, category, display order) in display
// order; the two-column masters select an empty category.
var lookupQueries = map[string]string{
	types.LookupDomains:           "SELECT domain_code, domain_full, domain_category, display_order FROM domain_master ORDER BY display_order",
	types.LookupTeachingMethods:   "SELECT method_code, method_full, method_category, display_order FROM teaching_methods_master ORDER BY display_order",
	types.LookupAssessmentMethods: "SELECT method_code, method_full, method_category, display_order FROM assessment_methods_master ORDER BY display_order",
	types.LookupPriorities:        "SELECT priority_code, priority_full, '', display_order FROM priority_master ORDER BY display_order",
	types.LookupCompetencies:      "SELECT competency_code, competency_full, '', display_order FROM competency_master ORDER BY display_order",
	types.LookupIntegrations:      "SELECT integration_code, integration_full, integration_type, display_order FROM integration_master ORDER BY display_order",
}

// Lookup returns the entries of one classification master in display
// order. Returns ErrNotFound for an unrecognized lookup name.
func (s *Store) Lookup(name string) ([]types.LookupEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	query, ok := lookupQueries[name]
	if !ok {
		return nil, types.ErrNotFound
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying lookup %s: %w", name, err)
	}
	defer rows.Close()

	var out []types.LookupEntry
	for rows.Next() {
		var (
			e        types.LookupEntry
			category sql.NullString
		)
		if err := rows.Scan(&e.Code, &e.Full, &category, &e.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scanning lookup entry: %w", err)
		}
		e.Category = category.String
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lookup %s: %w", name, err)
	}
	return out, nil
}

// LookupCount returns the row count of a lookup table, used to verify the
// seed-once contract.
func (s *Store) LookupCount(name string) (int, error) {
	entries, err := s.Lookup(name)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
