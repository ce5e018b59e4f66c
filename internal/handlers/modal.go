package handlers

import (
	"fmt"

	"hypertech.group/hypersystem-web/internal/i18n"
	"hypertech.group/hypersystem-web/internal/leads"
	"hypertech.group/hypersystem-web/internal/modal"
)

// ModalView is the trial/subscription overlay.
type ModalView struct {
	Open         bool
	Subscription bool
	Title        string
	Desc         string
	Submit       string
	PlanKey      string
	Action       string
	Close        StateLink

	Values leads.Form
	Errors map[string]string
	Thanks bool
}

// HasError reports whether field was rejected.
func (v ModalView) HasError(field string) bool {
	_, ok := v.Errors[field]
	return ok
}

func (b *Builder) modal(lk Linker, s State, st modal.State, m *i18n.Messages) (ModalView, error) {
	v := ModalView{
		Open:   st.Open,
		Title:  m.Modal.Title,
		Desc:   m.Modal.Desc,
		Submit: m.Modal.BtnSubmit,
		Action: "/" + string(lk.Locale) + "/contact",
		Close: StateLink{
			Href:     lk.PagePath(s.WithoutModal()),
			Fragment: "/" + string(lk.Locale) + "/_fragments/modal/close?" + ParamView + "=" + string(lk.View),
			Target:   "#" + FragmentModal,
		},
	}
	if st.Subscription() {
		title, err := i18n.Format(m.Modal.TitleSubscription, i18n.Params{"plan": st.Plan})
		if err != nil {
			return ModalView{}, fmt.Errorf("handlers: modal title: %w", err)
		}
		v.Subscription = true
		v.Title = title
		v.Desc = m.Modal.DescSubscription
		v.Submit = m.Modal.BtnSubscribe
		v.PlanKey = string(s.Plan)
	}
	return v, nil
}

// ApplySubmission updates d after a lead submission. A nil verr means the lead
// was accepted: the controller resets and the overlay shows the thank-you panel.
// Otherwise the form is shown again with its values and localized field errors.
func ApplySubmission(d *PageData, c *modal.Controller, form leads.Form, verr *leads.ValidationError) {
	if verr == nil {
		c.Close()
		d.Modal = ModalView{
			Open:   true,
			Thanks: true,
			Close:  d.Modal.Close,
		}
		return
	}
	d.Modal.Open = true
	d.Modal.Values = form
	d.Modal.Errors = make(map[string]string, len(verr.Fields))
	for field, problem := range verr.Fields {
		switch problem {
		case leads.ProblemRequired:
			d.Modal.Errors[field] = d.T.Modal.ErrRequired
		case leads.ProblemTooLong:
			d.Modal.Errors[field] = d.T.Modal.ErrTooLong
		default:
			d.Modal.Errors[field] = d.T.Modal.ErrPhone
		}
	}
}
