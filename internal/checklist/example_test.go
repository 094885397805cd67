package checklist_test

import (
	"fmt"

	"github.com/bjulian5/integrate/internal/checklist"
	"github.com/bjulian5/integrate/internal/model"
)

func ExampleRender() {
	f := model.Forest{
		{
			Number:    model.Resolved(10),
			Author:    "alice",
			MergeDate: "2024-01-01T00:00:00+09:00",
			Children: []model.PRNode{
				{Number: model.Resolved(11), Author: "bob", MergeDate: "2024-01-02T00:00:00+09:00"},
			},
		},
	}
	fmt.Print(checklist.Render(f))
	// Output:
	// - [ ] #10 @alice 2024-01-01T00:00:00+09:00
	//   - [ ] #11 @bob 2024-01-02T00:00:00+09:00
}

func ExampleLineReconciler_Reconcile() {
	oldBody := "- [x] #10 @alice 2024-01-01\n"
	newBody := "- [ ] #10 @alice 2024-01-01\n  - [ ] #11 @bob 2024-01-02\n"
	fmt.Print(checklist.LineReconciler{}.Reconcile(oldBody, newBody))
	// Output:
	// - [x] #10 @alice 2024-01-01
	//   - [ ] #11 @bob 2024-01-02
}
