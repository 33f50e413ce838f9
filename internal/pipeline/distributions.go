package pipeline

import (
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// ResidenceTop is how many residence countries the residence distribution
// keeps.
const ResidenceTop = 7

// CompanySizeDistribution counts records per company size.
func CompanySizeDistribution(records []models.Record) []models.CategoryCount {
	return counts(groupBy(records, always(func(r models.Record) string { return r.CompanySize })))
}

// ResidenceDistribution counts records per employee residence and keeps the
// n most common countries.
func ResidenceDistribution(records []models.Record, n int) []models.CategoryCount {
	dist := counts(groupBy(records, always(func(r models.Record) string { return r.EmployeeResidence })))
	if n >= 0 && len(dist) > n {
		dist = dist[:n]
	}
	return dist
}

// RemoteDistribution counts records per work arrangement. Every unexpected
// remote ratio is counted under RemoteOther.
func RemoteDistribution(records []models.Record) []models.CategoryCount {
	return counts(groupBy(records, always(func(r models.Record) string { return RemoteLabel(r.RemoteRatio) })))
}
