package figure

import (
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/mhagel/pubfig/pkg/errors"
)

// save renders p once per output format and writes {name}.pdf and
// {name}.png into destDir. The PDF is the figure for the paper; the
// PNG is a raster copy at the style's DPI for presentation software
// that cannot embed PDFs.
func (r *Renderer) save(p *plot.Plot, serif font.Font, entries []legendEntry, o options, name, destDir string) error {
	size := o.figureSize(r.Class)

	pdf := vgpdf.New(size.Width, size.Height)
	r.draw(p, serif, entries, o, draw.New(pdf))
	if err := writeFile(filepath.Join(destDir, name+".pdf"), pdf); err != nil {
		return err
	}

	img := vgimg.NewWith(vgimg.UseWH(size.Width, size.Height), vgimg.UseDPI(r.Style.DPI))
	r.draw(p, serif, entries, o, draw.New(img))
	png := vgimg.PngCanvas{Canvas: img}
	return writeFile(filepath.Join(destDir, name+".png"), png)
}

// draw composes the legend and the plot on one canvas.
func (r *Renderer) draw(p *plot.Plot, serif font.Font, entries []legendEntry, o options, dc draw.Canvas) {
	dc = draw.Crop(dc, r.Style.Pad, -r.Style.Pad, r.Style.Pad, -r.Style.Pad)

	if o.hideLegend || len(entries) == 0 {
		p.Draw(dc)
		return
	}

	legends := r.legendColumns(entries, o.columns, serif)
	if o.placement == LegendAbove {
		dc = drawLegendsAbove(dc, legends)
		p.Draw(dc)
		return
	}

	p.Draw(dc)
	drawLegendsInside(dc, legends, o.placement)
}

func writeFile(path string, wt io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeDestUnwritable, err, "creating %s", path)
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "writing %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeDestUnwritable, err, "closing %s", path)
	}
	return nil
}
