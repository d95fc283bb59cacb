package cli

import (
	"fmt"
	"strings"

	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
)

// parseDetail parses an --item value of the form ITEM_ID=STATUS[:remark].
// The status is case-insensitive. The remark may itself contain colons.
func parseDetail(s string) (primary.ReportDetailInput, error) {
	id, rest, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(id) == "" || strings.TrimSpace(rest) == "" {
		return primary.ReportDetailInput{}, fmt.Errorf("invalid item %q (expected ITEM_ID=STATUS[:remark])", s)
	}
	status, remark, _ := strings.Cut(rest, ":")
	return primary.ReportDetailInput{
		ChecklistItemID: strings.TrimSpace(id),
		Status:          strings.ToUpper(strings.TrimSpace(status)),
		Remark:          strings.TrimSpace(remark),
	}, nil
}

// mergeDetails marks every checklist item NORMAL, then applies overrides
// in checklist order. Overrides for items outside the checklist are kept
// so the service can reject them.
func mergeDetails(items []*primary.ChecklistItem, overrides []primary.ReportDetailInput) []primary.ReportDetailInput {
	byID := make(map[string]primary.ReportDetailInput, len(overrides))
	for _, o := range overrides {
		byID[o.ChecklistItemID] = o
	}

	details := make([]primary.ReportDetailInput, 0, len(items)+len(overrides))
	used := make(map[string]bool, len(overrides))
	for _, item := range items {
		if o, ok := byID[item.ID]; ok {
			details = append(details, o)
			used[item.ID] = true
			continue
		}
		details = append(details, primary.ReportDetailInput{ChecklistItemID: item.ID, Status: primary.StatusNormal})
	}
	for _, o := range overrides {
		if !used[o.ChecklistItemID] {
			details = append(details, o)
		}
	}
	return details
}

// optionalString returns nil unless the flag was set, so updates leave
// unset fields alone.
func optionalString(changed bool, v string) *string {
	if !changed {
		return nil
	}
	return &v
}
