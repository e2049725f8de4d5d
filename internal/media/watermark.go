package media

import (
	"strconv"
	"strings"
)

// GoodiesFolder es la carpeta destino de las imágenes de goodies
const GoodiesFolder = "DevStyle/Goodies"

// Overlay es una directiva de marca de agua aplicada por el host remoto
type Overlay struct {
	Layer   string
	Opacity float64
	Gravity string
	X       int
	Y       int
	Width   string
	Angle   int
}

func (o Overlay) transformation() string {
	parts := []string{
		"l_" + o.Layer,
		"o_" + strconv.FormatFloat(o.Opacity, 'f', -1, 64),
		"g_" + o.Gravity,
	}
	if o.X != 0 {
		parts = append(parts, "x_"+strconv.Itoa(o.X))
	}
	if o.Y != 0 {
		parts = append(parts, "y_"+strconv.Itoa(o.Y))
	}
	if o.Width != "" {
		parts = append(parts, "w_"+o.Width)
	}
	if o.Angle != 0 {
		parts = append(parts, "a_"+strconv.Itoa(o.Angle))
	}
	return strings.Join(parts, ",")
}

// WatermarkOverlays son las tres marcas de agua fijas que llevan todas
// las imágenes de goodies: esquina superior izquierda, centro rotado y
// esquina inferior derecha
var WatermarkOverlays = []Overlay{
	{Layer: "devstyle_watermark", Opacity: 10, Gravity: "north_west", X: 5, Y: 5, Width: "0.5"},
	{Layer: "devstyle_watermark", Opacity: 6.5, Gravity: "center", Width: "1.0", Angle: 45},
	{Layer: "devstyle_watermark", Opacity: 10, Gravity: "south_east", X: 5, Y: 5, Width: "0.5"},
}

// WatermarkTransformation encadena los overlays en una sola
// transformación para la URL de subida
func WatermarkTransformation() string {
	chained := make([]string, 0, len(WatermarkOverlays))
	for _, overlay := range WatermarkOverlays {
		chained = append(chained, overlay.transformation())
	}
	return strings.Join(chained, "/")
}
