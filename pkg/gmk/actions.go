package gmk

import (
	"fmt"

	"github.com/cfoust/gmk/pkg/assets"
	"github.com/cfoust/gmk/pkg/gmk/io"
)

const (
	actionListVersion uint32 = 400
	actionVersion     uint32 = 440
)

func writeAction(p *io.Buffer, action *assets.CodeAction) error {
	err := p.Put(
		actionVersion,
		action.LibID,
		action.ID,
		action.ActionKind,
		action.CanBeRelative,
		action.IsCondition,
		action.AppliesToSomething,
		action.ExecutionType,
		action.FnName,
		action.FnCode,
		action.ParamCount,
		uint32(assets.NumActionParams),
		action.ParamTypes,
		action.AppliesTo,
		action.IsRelative,
		uint32(assets.NumActionParams),
	)
	if err != nil {
		return err
	}

	for _, param := range action.ParamStrings {
		err = p.PutString(param)
		if err != nil {
			return err
		}
	}

	p.PutBool(action.InvertCondition)
	return nil
}

func writeActions(p *io.Buffer, actions []assets.CodeAction) error {
	p.PutUint(actionListVersion)
	p.PutUint(uint32(len(actions)))

	for i := range actions {
		err := writeAction(p, &actions[i])
		if err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
	}

	return nil
}
