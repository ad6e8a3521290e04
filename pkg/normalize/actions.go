package normalize

import (
	"github.com/cfoust/gmk/pkg/assets"
)

// RepairActions turns every code-kind action that runs as code into the
// standard "execute code" action, which is the only form the authoring tool
// loads correctly. It returns the number of actions that changed.
func RepairActions(g *assets.GameAssets) int {
	repaired := 0
	g.ForEachAction(func(action *assets.CodeAction) {
		if action.ActionKind != assets.ActionKindCode || action.ExecutionType != assets.ExecutionCode {
			return
		}

		if action.ID == assets.ActionExecuteCode && action.LibID == assets.LibraryMainActions {
			return
		}

		action.ID = assets.ActionExecuteCode
		action.LibID = assets.LibraryMainActions
		repaired++
	})
	return repaired
}
