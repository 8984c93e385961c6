package cli

import (
	"fmt"
	"io"

	"github.com/fakestore/storefront/internal/client/fetch"
	"github.com/fakestore/storefront/internal/currency"
)

func renderListing(w io.Writer, s *listingScreen) {
	renderChips(w, s)

	switch s.products.Status {
	case fetch.StatusLoading:
		fmt.Fprintln(w, "Carregando produtos...")
	case fetch.StatusFailed:
		fmt.Fprintln(w, s.products.Message)
		fmt.Fprintln(w, "Digite 'retry' para tentar novamente.")
	case fetch.StatusLoaded:
		if len(s.products.Data) == 0 {
			fmt.Fprintln(w, msgNoProducts)
			return
		}
		for _, p := range s.products.Data {
			fmt.Fprintf(w, "  [%d] %s  %s\n", p.ID, p.Title, currency.Format(p.Price))
		}
	}
}

func renderChips(w io.Writer, s *listingScreen) {
	fmt.Fprint(w, "Categorias:")
	if s.selected == "" {
		fmt.Fprint(w, " [Todas]")
	} else {
		fmt.Fprint(w, " Todas")
	}
	for _, c := range s.chips {
		if c == s.selected {
			fmt.Fprintf(w, " [%s]", c)
		} else {
			fmt.Fprintf(w, " %s", c)
		}
	}
	fmt.Fprintln(w)
}

func renderDetail(w io.Writer, s *detailScreen) {
	switch s.product.Status {
	case fetch.StatusLoading:
		fmt.Fprintln(w, "Carregando detalhes...")
	case fetch.StatusFailed:
		fmt.Fprintln(w, s.product.Message)
		if !s.notFound {
			fmt.Fprintln(w, "Digite 'retry' para tentar novamente.")
		}
	case fetch.StatusLoaded:
		p := s.product.Data
		fmt.Fprintf(w, "%s\n", p.Title)
		fmt.Fprintf(w, "Preço: %s\n", currency.Format(p.Price))
		fmt.Fprintf(w, "Categoria: %s\n", p.Category)
		fmt.Fprintf(w, "Imagem: %s\n", p.Image)
		fmt.Fprintf(w, "\n%s\n", p.Description)
	}
}
