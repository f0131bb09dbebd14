package adaptation

import (
	"adaptctl/pkg/protocol"
)

// Power plugs.

var (
	ukStandard    = protocol.New("UKStandard")
	euStandard    = protocol.New("EUStandard")
	japanStandard = protocol.New("JapanStandard")
	iraqStandard  = protocol.New("IraqStandard")
)

type ukPlug struct{ label string }
type euPlug struct{ label string }
type travelPlug struct{ mode string }

type ukToEU struct{ Adapter }
type euToJapan struct{ Adapter }
type japanToIraq struct{ Adapter }
type euToIraq struct{ Adapter }
type ukToJapan struct{ Adapter }
type travelToEU struct{ Adapter }

func newUKToEU(a any) any      { return &ukToEU{NewAdapter(a)} }
func newEUToJapan(a any) any   { return &euToJapan{NewAdapter(a)} }
func newJapanToIraq(a any) any { return &japanToIraq{NewAdapter(a)} }
func newEUToIraq(a any) any    { return &euToIraq{NewAdapter(a)} }
func newUKToJapan(a any) any   { return &ukToJapan{NewAdapter(a)} }

// newPlugManager returns a manager that knows which concrete plug types
// provide which standard.
func newPlugManager() *Manager {
	m := NewManager()
	m.RegisterProvides(protocol.Of[*ukPlug](), ukStandard)
	m.RegisterProvides(protocol.Of[*euPlug](), euStandard)
	m.RegisterProvides(protocol.Of[*ukToEU](), euStandard)
	m.RegisterProvides(protocol.Of[*euToJapan](), japanStandard)
	m.RegisterProvides(protocol.Of[*japanToIraq](), iraqStandard)
	m.RegisterProvides(protocol.Of[*euToIraq](), iraqStandard)
	m.RegisterProvides(protocol.Of[*ukToJapan](), japanStandard)
	m.RegisterProvides(protocol.Of[*travelToEU](), euStandard)
	return m
}

// Editors, scripting and undo.

var (
	iEditor     = protocol.New("IEditor")
	iScriptable = protocol.New("IScriptable")
	iUndoable   = protocol.New("IUndoable")
	iPrintable  = protocol.New("IPrintable")
)

type fileType struct{ ext string }

type fileTypeToIEditor struct{ Adapter }
type iScriptableToIUndoable struct{ Adapter }

type editor struct{ name string }

type textEditor struct {
	editor
	syntax string
}

type editorToIPrintable struct{ Adapter }
type textEditorToIPrintable struct{ Adapter }

// printer is a Go interface protocol; anything with PrintDoc provides it.
type printer interface {
	PrintDoc() string
}

type printableEditor struct {
	Adapter
	ed *editor
}

func (p *printableEditor) PrintDoc() string { return "printing " + p.ed.name }

type readyPrinter struct{ name string }

func (r *readyPrinter) PrintDoc() string { return r.name }

// Interface hierarchy.

var (
	iPrimate      = protocol.New("IPrimate")
	iHuman        = protocol.New("IHuman", iPrimate)
	iChild        = protocol.New("IChild", iHuman)
	iIntermediate = protocol.New("IIntermediate")
	iTarget       = protocol.New("ITarget")
)

type source struct{ id int }

type iChildToIIntermediate struct{ Adapter }
type iHumanToIIntermediate struct{ Adapter }
type iPrimateToIIntermediate struct{ Adapter }
type iIntermediateToITarget struct{ Adapter }

// Chaining with intermediate hierarchy climbing.

var (
	iStart    = protocol.New("IStart")
	iGeneric  = protocol.New("IGeneric")
	iSpecific = protocol.New("ISpecific", iGeneric)
	iEnd      = protocol.New("IEnd")
)

type start struct{ id int }

type iStartToISpecific struct{ Adapter }
type iGenericToIEnd struct{ Adapter }
