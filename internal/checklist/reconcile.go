package checklist

import "strings"

const (
	checkedMarker   = "- [x] #"
	uncheckedMarker = "- [ ] #"
)

// Reconciler carries user state from a previously published checklist into
// a freshly rendered one
type Reconciler interface {
	Reconcile(oldBody, newBody string) string
}

// LineReconciler keeps a checkmark only when the whole previously checked
// line, indentation included, reappears verbatim in the new checklist. A
// change to the PR number, author or date of a line drops its checkmark.
type LineReconciler struct{}

// Reconcile returns newBody with every line that was checked in oldBody
// checked again
func (LineReconciler) Reconcile(oldBody, newBody string) string {
	checked := make(map[string]string)
	for _, line := range strings.Split(oldBody, "\n") {
		if !strings.Contains(line, checkedMarker) {
			continue
		}
		unchecked := strings.ReplaceAll(line, checkedMarker, uncheckedMarker)
		checked[unchecked] = line
	}

	if len(checked) == 0 {
		return newBody
	}

	lines := strings.Split(newBody, "\n")
	for i, line := range lines {
		if original, ok := checked[line]; ok {
			lines[i] = original
		}
	}
	return strings.Join(lines, "\n")
}
