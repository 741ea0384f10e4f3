package web

import (
	"github.com/st-little/anshin-meshi/internal/content"
	"github.com/st-little/anshin-meshi/internal/fetch"
	"github.com/st-little/anshin-meshi/internal/record"
	uistate "github.com/st-little/anshin-meshi/internal/ui/state"
)

const maxSuggestions = 3

type link struct {
	Label string
	Href  string
}

type modalView struct {
	Name      string
	Class     string
	Title     string
	CloseHref string
	Fields    []record.Field
	Blocks    []content.Block
}

// page is the data handed to the index template.
type page struct {
	State       uistate.State
	Status      string
	Pending     bool
	Failed      bool
	SelfHref    string
	BurgerHref  string
	MenuLinks   []link
	Rows        []link
	Suggestions []string
	Modals      []modalView

	SiteName     string
	SearchHint   string
	Loading      string
	FetchFailed  string
	TableHeading string
	NoMatch      string
	CloseLabel   string
	Credit       string
	TwitterURL   string
}

// buildPage derives everything the template draws from the state snapshot
// and the fetch result. Each toggle links to the state produced by applying
// its action to the current one.
func buildPage(st uistate.State, result fetch.Result) page {
	p := page{
		State:        st,
		Status:       result.Status.String(),
		Pending:      result.Status == fetch.Pending,
		Failed:       result.Status == fetch.Failure,
		SelfHref:     href(st, result.Records),
		BurgerHref:   href(uistate.Reduce(st, uistate.ToggleBurger{}), result.Records),
		SiteName:     content.SiteName,
		SearchHint:   content.SearchHint,
		Loading:      content.Loading,
		FetchFailed:  content.FetchFailed,
		TableHeading: content.TableHeading,
		NoMatch:      content.NoMatch,
		CloseLabel:   content.CloseLabel,
		Credit:       content.Credit,
		TwitterURL:   content.TwitterURL,
	}
	static := []struct {
		modal uistate.Modal
		doc   content.Document
	}{
		{uistate.ModalAbout, content.About()},
		{uistate.ModalTerms, content.TermsOfUse()},
		{uistate.ModalPrivacy, content.PrivacyPolicy()},
	}
	for _, s := range static {
		p.MenuLinks = append(p.MenuLinks, link{
			Label: s.doc.Title,
			Href:  href(uistate.Reduce(st, uistate.ToggleModal{Modal: s.modal}), result.Records),
		})
	}
	if result.Status == fetch.Success {
		for _, r := range record.Filter(result.Records, st.Search) {
			p.Rows = append(p.Rows, link{
				Label: r.ProductName,
				Href:  href(uistate.Reduce(st, uistate.SelectRecord{Record: r}), result.Records),
			})
		}
		if len(p.Rows) == 0 {
			p.Suggestions = record.Suggest(result.Records, st.Search, maxSuggestions)
		}
	}
	p.Modals = append(p.Modals, modalView{
		Name:      uistate.ModalDetail.String(),
		Class:     st.ModalClass(uistate.ModalDetail),
		Title:     content.DetailTitle,
		CloseHref: href(uistate.Reduce(st, uistate.CloseModal{Modal: uistate.ModalDetail}), result.Records),
		Fields:    st.Selected.Fields(),
	})
	for _, s := range static {
		p.Modals = append(p.Modals, modalView{
			Name:      s.modal.String(),
			Class:     st.ModalClass(s.modal),
			Title:     s.doc.Title,
			CloseHref: href(uistate.Reduce(st, uistate.CloseModal{Modal: s.modal}), result.Records),
			Blocks:    s.doc.Blocks,
		})
	}
	return p
}
