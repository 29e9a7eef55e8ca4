package cli

import (
	"encoding/json"
	"fmt"

	"github.com/swatchfile/swatch/internal/color"
	"github.com/swatchfile/swatch/internal/model"
)

// colorJson represents a swatch with its derived formats for JSON output.
type colorJson struct {
	Index int       `json:"index"`
	Name  string    `json:"name"`
	RGB   color.RGB `json:"rgb"`
	Hex   string    `json:"hex"`
	HSL   string    `json:"hsl"`
	CMYK  string    `json:"cmyk"`
}

func colorToJson(rec model.ColorRecord) colorJson {
	return colorJson{
		Index: rec.Index,
		Name:  rec.Name,
		RGB:   rec.RGB,
		Hex:   rec.RGB.Hex(),
		HSL:   rec.RGB.HSL().String(),
		CMYK:  rec.RGB.CMYK().String(),
	}
}

// ListOutput is the JSON shape of `swatch list --json`.
type ListOutput struct {
	Colors  []colorJson `json:"colors"`
	CanUndo bool        `json:"can_undo"`
	CanRedo bool        `json:"can_redo"`
}

// NewListOutput builds the list output from a collection.
func NewListOutput(records []model.ColorRecord, canUndo, canRedo bool) ListOutput {
	colors := make([]colorJson, len(records))
	for i, rec := range records {
		colors[i] = colorToJson(rec)
	}
	return ListOutput{Colors: colors, CanUndo: canUndo, CanRedo: canRedo}
}

func printJson(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
