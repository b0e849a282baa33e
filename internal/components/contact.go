package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"seothon.dev/web/internal/contact"
	"seothon.dev/web/internal/handlers"
	"seothon.dev/web/internal/middleware"
	"seothon.dev/web/internal/seo"
	"seothon.dev/web/internal/site"
)

type ContactView struct {
	Form         contact.Form
	Errors       contact.FieldErrors
	Sent         string // reference of an accepted submission
	CSRFRejected bool
	Services     []site.Service
	Organization site.Organization
}

func Contact(p handlers.PageData, v ContactView) g.Node {
	return Section(Class("contact"), marker(seo.MarkerSection, "contact"),
		H1(g.Text(p.T("contact.title"))),
		P(Class("lead"), g.Text(p.T("contact.lead"))),
		g.If(v.Sent != "", Div(Class("notice success"), g.Attr("role", "status"), g.Text(p.Tf("contact.sent", v.Sent)))),
		g.If(v.CSRFRejected, Div(Class("notice error"), g.Attr("role", "alert"), g.Text(p.T("contact.error.csrf")))),
		Div(Class("contact-grid"),
			Form(ID("contact-form"), Method("post"), Action("/contact"), marker(seo.MarkerContent, "contact-form"),
				Input(Type("hidden"), Name(middleware.CSRFField), Value(p.CSRFToken)),
				formField(p, v.Errors, "name",
					Input(ID("contact-name"), Name("name"), Type("text"), Value(v.Form.Name), Required(), AutoComplete("name"), fieldState(v.Errors, "name")),
				),
				formField(p, v.Errors, "email",
					Input(ID("contact-email"), Name("email"), Type("email"), Value(v.Form.Email), Required(), AutoComplete("email"), fieldState(v.Errors, "email")),
				),
				formField(p, v.Errors, "service",
					Select(ID("contact-service"), Name("service"), fieldState(v.Errors, "service"),
						Option(Value(""), g.Text(p.T("contact.form.service.none"))),
						g.Group(g.Map(v.Services, func(s site.Service) g.Node {
							return Option(Value(s.ID), g.If(v.Form.Service == s.ID, Selected()), g.Text(s.Name))
						})),
						Option(Value(site.OtherService), g.If(v.Form.Service == site.OtherService, Selected()), g.Text(p.T("contact.form.service.other"))),
					),
				),
				formField(p, v.Errors, "message",
					Textarea(ID("contact-message"), Name("message"), Rows("6"), Required(), fieldState(v.Errors, "message"), g.Text(v.Form.Message)),
				),
				Button(Type("submit"), Class("button primary"), g.Text(p.T("contact.form.submit"))),
			),
			Aside(Class("contact-details"), marker(seo.MarkerContent, "contact-details"),
				H2(g.Text(p.T("contact.details"))),
				Address(
					P(Strong(g.Text(v.Organization.Name))),
					P(A(Href("mailto:"+v.Organization.Email), g.Text(v.Organization.Email))),
					g.If(v.Organization.Phone != "", P(A(Href("tel:"+v.Organization.Phone), g.Text(v.Organization.Phone)))),
					P(
						g.Text(v.Organization.Address.Street), Br(),
						g.Text(v.Organization.Address.PostalCode+" "+v.Organization.Address.City), Br(),
						g.Text(v.Organization.Address.Country),
					),
				),
			),
		),
	)
}

func formField(p handlers.PageData, errs contact.FieldErrors, name string, control g.Node) g.Node {
	msg, invalid := errs[name]
	return Div(Class("field"),
		Label(For("contact-"+name), g.Text(p.T("contact.form."+name))),
		control,
		g.If(invalid, P(ID("contact-"+name+"-error"), Class("field-error"), g.Text(p.T(msg)))),
	)
}

func fieldState(errs contact.FieldErrors, name string) g.Node {
	if _, invalid := errs[name]; !invalid {
		return nil
	}
	return g.Group([]g.Node{
		Aria("invalid", "true"),
		Aria("describedby", "contact-"+name+"-error"),
	})
}
