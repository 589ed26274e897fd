// Package pdf genera el recibo de pago de un movimiento de caja.
//
// Layout A5 apaisado: encabezado con el nombre del gimnasio, datos del
// movimiento (fecha, concepto, socio si existe) y el monto destacado.
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/athletica/gym-api/internal/application/pagos"
	"github.com/athletica/gym-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ pagos.ReciboPDFGenerator = (*MarotoReciboGenerator)(nil)

// MarotoReciboGenerator implementa pagos.ReciboPDFGenerator usando Maroto v2.
type MarotoReciboGenerator struct{}

// NewMarotoReciboGenerator construye el generador.
func NewMarotoReciboGenerator() *MarotoReciboGenerator { return &MarotoReciboGenerator{} }

// GenerateReciboPDF genera el PDF del recibo y devuelve sus bytes.
// socio puede ser nil cuando el movimiento no está asociado a un socio.
func (g *MarotoReciboGenerator) GenerateReciboPDF(
	_ context.Context,
	mov *entity.Movimiento,
	gym *entity.Gimnasio,
	socio *entity.Socio,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Recibo de pago", true).
		WithAuthor(gym.GymName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(mov, gym))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(detalleRows(mov, socio)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(montoRow(mov))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del gimnasio (izq) y número + fecha del recibo (der).
func headerRow(mov *entity.Movimiento, gym *entity.Gimnasio) core.Row {
	// Los primeros 8 caracteres del UUID alcanzan como referencia visible.
	numero := strings.ToUpper(mov.ID)
	if len(numero) > 8 {
		numero = numero[:8]
	}
	fecha := mov.Fecha.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(gym.GymName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de pago", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO N° "+numero, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// detalleRows: concepto y, si existe, socio asociado.
func detalleRows(mov *entity.Movimiento, socio *entity.Socio) []core.Row {
	rows := []core.Row{
		row.New(10).Add(
			col.New(3).Add(text.New("Concepto:", props.Text{Style: fontstyle.Bold, Top: 2})),
			col.New(9).Add(text.New(mov.Descripcion, props.Text{Top: 2})),
		),
	}
	if socio != nil {
		rows = append(rows,
			row.New(8).Add(
				col.New(3).Add(text.New("Socio:", props.Text{Style: fontstyle.Bold, Top: 1})),
				col.New(9).Add(text.New(socio.NombreCompleto, props.Text{Top: 1})),
			),
			row.New(8).Add(
				col.New(3).Add(text.New("Documento:", props.Text{Style: fontstyle.Bold, Top: 1})),
				col.New(9).Add(text.New(socio.Documento, props.Text{Top: 1})),
			),
		)
	}
	return rows
}

// montoRow: monto del pago destacado a la derecha.
func montoRow(mov *entity.Movimiento) core.Row {
	return row.New(14).Add(
		col.New(6).Add(text.New("TOTAL ABONADO", props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 4, Color: colorGray,
		})),
		col.New(6).Add(text.New("$ "+mov.Monto.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 16, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}
