package pipeline

// Remote work labels.
const (
	RemoteOnsite = "Onsite"
	RemoteHybrid = "Hybrid"
	RemoteFull   = "Remote"
	RemoteOther  = "Other"
)

// RemoteLabel maps a remote ratio to its work-arrangement label. Ratios
// other than 0, 50 and 100 are reported as RemoteOther rather than dropped.
func RemoteLabel(ratio int) string {
	switch ratio {
	case 0:
		return RemoteOnsite
	case 50:
		return RemoteHybrid
	case 100:
		return RemoteFull
	default:
		return RemoteOther
	}
}

var seniorityLabels = map[string]string{
	"EN": "Junior-level",
	"MI": "Mid-level",
	"SE": "Senior-level",
	"EX": "Executive-level",
}

// SeniorityOrder is the display order of seniority categories.
var SeniorityOrder = []string{"Junior-level", "Mid-level", "Senior-level", "Executive-level"}

// SeniorityLabel returns the display label of a seniority code. Unknown
// codes have no label.
func SeniorityLabel(code string) (string, bool) {
	label, ok := seniorityLabels[code]
	return label, ok
}
