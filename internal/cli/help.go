package cli

import (
	"fmt"
	"io"

	"github.com/runoshun/goalkeeper/internal/domain"
)

func showPlanHelp(w io.Writer) error {
	help, err := domain.RenderPlanHelp()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, help)
	return err
}
