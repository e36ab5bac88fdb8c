package application

import "github.com/nfdez/brainctl/internal/domain"

// ReportEntry is one requested node together with whether the server
// confirmed it active.
type ReportEntry struct {
	Node   domain.NodeRef
	Active bool
}

// ActivationReport summarizes an activate round trip: each requested node
// in request order, plus the requested-minus-activated difference.
type ActivationReport struct {
	Entries []ReportEntry
	Missing []domain.NodeRef
}

// BuildActivationReport marks each requested node against the server's
// activeNodes list. Nodes the server did not activate end up in Missing,
// preserving request order.
func BuildActivationReport(requested []domain.NodeRef, activeIDs []string) ActivationReport {
	active := make(map[string]struct{}, len(activeIDs))
	for _, id := range activeIDs {
		active[id] = struct{}{}
	}

	report := ActivationReport{Entries: make([]ReportEntry, 0, len(requested))}
	for _, node := range requested {
		_, ok := active[node.ID]
		report.Entries = append(report.Entries, ReportEntry{Node: node, Active: ok})
		if !ok {
			report.Missing = append(report.Missing, node)
		}
	}

	return report
}
