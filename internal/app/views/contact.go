package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FACorreiaa/northern-oak/internal/app/content"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
	"github.com/FACorreiaa/northern-oak/internal/app/views/components/button"
)

// FormState is what the contact view needs to know about one form.
type FormState struct {
	Fields    models.ContactFields
	Submitted bool
	CanSubmit bool
}

type variantCopy struct {
	heading, lead, cardTitle, messageLabel, messagePlaceholder, submit string
	doneTitle, doneText, again                                         string
}

var copyFor = map[models.FormVariant]variantCopy{
	models.VariantContact: {
		heading:            "Get in Touch",
		lead:               "Have a question or want to discuss your project? We'd love to hear from you.",
		cardTitle:          "Send us a Message",
		messageLabel:       "Message *",
		messagePlaceholder: "How can we help you?",
		submit:             "Send Message",
		doneTitle:          "Message Sent!",
		doneText:           "Thank you for contacting us. We'll get back to you as soon as possible.",
		again:              "Send Another Message",
	},
	models.VariantQuote: {
		heading:            "Get Your Quote",
		lead:               "Ready to start your project? Fill out the form and we'll provide you with a detailed quote tailored to your needs.",
		cardTitle:          "Request Your Quote",
		messageLabel:       "Project Description *",
		messagePlaceholder: "Please describe your project in detail, including dimensions, requirements, and any specific features you have in mind...",
		submit:             "Request Quote",
		doneTitle:          "Quote Request Submitted!",
		doneText:           "Thank you for your quote request. Our team will review your requirements and get back to you within 24 hours with a detailed proposal.",
		again:              "Send Another Quote Request",
	},
}

// ContactSection renders the form for variant v, or its confirmation once
// submitted. The outer element is the htmx swap target.
func ContactSection(reg *content.Registry, v models.FormVariant, st FormState) g.Node {
	if st.Submitted {
		return Confirmation(v)
	}
	cp := copyFor[v]
	co := reg.Company()

	return Section(ID(ContactID(v)), g.Attr("data-state", "editing"), Class("py-20 bg-gray-50"),
		container(
			Div(Class("grid lg:grid-cols-3 gap-12 max-w-6xl mx-auto"),
				Div(Class("space-y-8"),
					Div(
						H2(Class("text-3xl text-gray-900 mb-4"), g.Text(cp.heading)),
						P(Class("text-gray-600"), g.Text(cp.lead)),
					),
					Div(Class("space-y-6"),
						infoBlock("phone", "Phone",
							A(Href("tel:"+co.Phone), Class("text-gray-600"), g.Text(co.Phone)),
							P(Class("text-sm text-gray-500"), g.Text(co.PhoneHours)),
						),
						infoBlock("mail", "Email",
							P(Class("text-gray-600"), g.Text(co.Email)),
							P(Class("text-sm text-gray-500"), g.Text(co.EmailNote)),
						),
						infoBlock("map-pin", "Workshop", addressLines(co.Address, "text-gray-600")),
						infoBlock("clock", "Hours", addressLines(co.OpeningTime, "text-gray-600")),
					),
				),

				Div(Class("lg:col-span-2"),
					Div(Class("rounded-lg bg-white shadow-xl"),
						Div(Class("p-6 pb-0"), H3(Class("text-2xl font-semibold"), g.Text(cp.cardTitle))),
						Div(Class("p-6"), contactForm(reg.FormOptions(), v, st, cp)),
					),
				),
			),
		),
	)
}

func contactForm(opts models.FormOptions, v models.FormVariant, st FormState, cp variantCopy) g.Node {
	f := st.Fields
	action := contactURL(ContactPath, v)
	return Form(
		ID("contact-form-"+string(v)),
		Method("post"),
		Action(action),
		Class("space-y-6"),
		g.Attr("data-required-form", ""),
		hxPost(action),
		hxTarget("#"+ContactID(v)),
		hxSwap("outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type='submit']"),

		Div(Class("grid md:grid-cols-2 gap-4"),
			field("name", "Full Name *", textInput("name", "text", f.Name, "Your full name", true)),
			field("email", "Email Address *", textInput("email", "email", f.Email, "your@email.com", true)),
		),
		Div(Class("grid md:grid-cols-2 gap-4"),
			field("phone", "Phone Number", textInput("phone", "tel", f.Phone, "Your phone number", false)),
			field("location", "Project Location", textInput("location", "text", f.Location, "City, County", false)),
		),

		g.If(v == models.VariantQuote, g.Group([]g.Node{
			field("projectType", "Project Type *", selectInput("projectType", "Select project type", opts.ProjectTypes, f.ProjectType, true)),
			Div(Class("grid md:grid-cols-2 gap-4"),
				field("timeline", "Timeline", selectInput("timeline", "Select timeline", opts.Timelines, f.Timeline, false)),
				field("budget", "Budget Range", selectInput("budget", "Select budget range", opts.Budgets, f.Budget, false)),
			),
		})),

		field("message", cp.messageLabel,
			Textarea(ID("message"), Name("message"), Rows("6"), Required(), Placeholder(cp.messagePlaceholder),
				Class(inputClass+" h-auto min-h-[9rem]"),
				g.Text(f.Message),
			),
		),

		Div(Class("flex items-center space-x-2"),
			Input(Type("checkbox"), ID("newsletter"), Name("newsletter"), Value("on"),
				Class("h-4 w-4 cursor-pointer rounded border-gray-300 text-amber-700"),
				g.If(f.Newsletter, Checked()),
			),
			Label(For("newsletter"), Class("text-sm text-gray-600 cursor-pointer"),
				g.Text("I'd like to receive updates about your latest projects and woodworking tips"),
			),
		),

		button.Button(button.Props{Type: button.TypeSubmit, Size: button.SizeLg, FullWidth: true, Disabled: !st.CanSubmit},
			Span(Class("when-idle inline-flex items-center gap-2"), g.Text(cp.submit), icon("send", "h-4 w-4")),
			Span(Class("when-busy items-center gap-2"),
				Span(Class("animate-spin rounded-full h-4 w-4 border-b-2 border-white")),
				g.Text("Submitting..."),
			),
		),

		P(Class("text-xs text-gray-500 text-center"),
			g.Text("By submitting this form, you agree to our privacy policy. "+
				"We'll never share your information with third parties."),
		),
	)
}

// Confirmation replaces a submitted form until the visitor asks to send
// another.
func Confirmation(v models.FormVariant) g.Node {
	cp := copyFor[v]
	action := contactURL(ContactResetPath, v)
	return Div(ID(ContactID(v)), g.Attr("data-state", "submitted"), Class("text-center py-16"),
		icon("circle-check", "h-16 w-16 text-green-600 mx-auto mb-6"),
		H3(Class("text-2xl text-gray-900 mb-4"), g.Text(cp.doneTitle)),
		P(Class("text-gray-600 mb-8 max-w-md mx-auto"), g.Text(cp.doneText)),
		Form(Method("post"), Action(action), hxPost(action), hxTarget("#"+ContactID(v)), hxSwap("outerHTML"),
			button.Button(button.Props{Type: button.TypeSubmit, Variant: button.VariantOutline}, g.Text(cp.again)),
		),
	)
}

const inputClass = "flex h-10 w-full rounded-md border border-gray-300 bg-white px-3 py-2 text-sm " +
	"placeholder:text-gray-400 focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-amber-600"

func field(id, label string, control g.Node) g.Node {
	return Div(Class("space-y-2"),
		Label(For(id), Class("text-sm font-medium"), g.Text(label)),
		control,
	)
}

func textInput(name, typ, value, placeholder string, required bool) g.Node {
	return Input(ID(name), Name(name), Type(typ), Value(value), Placeholder(placeholder),
		Class(inputClass),
		g.If(required, Required()),
	)
}

func selectInput(name, prompt string, options []string, selected string, required bool) g.Node {
	nodes := make([]g.Node, 0, len(options)+1)
	nodes = append(nodes, Option(Value(""), g.Text(prompt)))
	for _, o := range options {
		nodes = append(nodes, Option(Value(o), g.If(o == selected, Selected()), g.Text(o)))
	}
	return Select(ID(name), Name(name), Class(inputClass), g.If(required, Required()), g.Group(nodes))
}

func infoBlock(iconName, title string, children ...g.Node) g.Node {
	return Div(Class("flex items-start space-x-4"),
		Div(Class("bg-amber-100 rounded-lg p-3"), icon(iconName, "h-5 w-5 text-amber-700")),
		Div(
			H4(Class("text-gray-900 mb-1"), g.Text(title)),
			g.Group(children),
		),
	)
}
