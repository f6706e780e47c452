// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose builds persona-driven outreach email sequences from a
// parsed account brief.
package compose

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/pdiddy/outreach-engine/internal/metrics"
	"github.com/pdiddy/outreach-engine/internal/persona"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

// Case-study claim ranges, inclusive.
const (
	MinClaimCountries = 5
	MaxClaimCountries = 14
	MinClaimSavings   = 20
	MaxClaimSavings   = 59
)

const signature = "Best regards,\n[Your Name]\n[Your Title]\nRemote.com"

// Composer generates email sequences. It is safe for concurrent use.
type Composer struct {
	mu      sync.Mutex
	rng     *rand.Rand
	metrics *metrics.Collectors
}

// Option configures a Composer.
type Option func(*Composer)

// WithSeed makes the case-study claims reproducible. A zero seed keeps the
// clock-seeded default.
func WithSeed(seed uint64) Option {
	return func(c *Composer) {
		if seed != 0 {
			c.rng = rand.New(rand.NewPCG(seed, seed))
		}
	}
}

// WithMetrics counts generated emails by type.
func WithMetrics(m *metrics.Collectors) Option {
	return func(c *Composer) { c.metrics = m }
}

// New returns a Composer.
func New(opts ...Option) *Composer {
	now := uint64(time.Now().UnixNano())
	c := &Composer{rng: rand.New(rand.NewPCG(now, now>>1))}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose returns one sequence per priority contact, in contact order. Each
// sequence holds the first opts.EmailCount() email types of types.EmailOrder.
func (c *Composer) Compose(brief types.AccountBrief, opts types.EmailGenerationOptions) []types.EmailSequence {
	brief.PriorityContacts = slices.Clone(brief.PriorityContacts)
	brief.Normalize()
	n := opts.EmailCount()

	sequences := make([]types.EmailSequence, 0, len(brief.PriorityContacts))
	for _, contact := range brief.PriorityContacts {
		attrs := persona.Attributes(contact.Persona)
		emails := make([]types.Email, 0, n)
		for _, t := range types.EmailOrder[:n] {
			e := c.email(t, contact, brief, attrs, opts)
			if !opts.IncludeSubjects {
				e.Subject = ""
			}
			emails = append(emails, e)
		}
		sequences = append(sequences, types.EmailSequence{Contact: contact, Emails: emails})
	}

	for _, t := range types.EmailOrder[:n] {
		c.metrics.AddEmails(string(t), len(sequences))
	}
	return sequences
}

func (c *Composer) email(t types.EmailType, contact types.Contact, b types.AccountBrief, a types.PersonaAttributes, opts types.EmailGenerationOptions) types.Email {
	switch t {
	case types.EmailPainPoint:
		return painPoint(contact, b, a, opts.Personalize)
	case types.EmailCaseStudy:
		countries, savings := c.claims()
		return caseStudy(contact, b, a, opts.Personalize, countries, savings)
	case types.EmailObjectionHandling:
		return objectionHandling(contact, b, a, opts.Personalize)
	case types.EmailValueAdd:
		return valueAdd(contact, b, a, opts.Personalize)
	default:
		return relationship(contact, b, a, opts.Personalize)
	}
}

// claims draws the case-study country count and savings percentage.
func (c *Composer) claims() (countries, savings int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	countries = MinClaimCountries + c.rng.IntN(MaxClaimCountries-MinClaimCountries+1)
	savings = MinClaimSavings + c.rng.IntN(MaxClaimSavings-MinClaimSavings+1)
	return countries, savings
}

func greeting(c types.Contact) string {
	return fmt.Sprintf("Hi %s,\n\n", c.FirstName())
}

// first returns list[0], or fallback when the list is empty or the item blank.
func first(list []string, fallback string) string {
	if len(list) > 0 && strings.TrimSpace(list[0]) != "" {
		return list[0]
	}
	return fallback
}

func at(list []string, i int, fallback string) string {
	if i < len(list) && strings.TrimSpace(list[i]) != "" {
		return list[i]
	}
	return fallback
}

func firstWord(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}

func or(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// audience is the lowercase persona label used in "Many ... professionals".
func audience(a types.PersonaAttributes) string {
	return strings.ToLower(a.Type.Label())
}

// relevantPainPoint returns the first brief pain point containing the first
// word of any persona pain point, case-insensitively.
func relevantPainPoint(b types.AccountBrief, a types.PersonaAttributes) (string, bool) {
	for _, bp := range b.PainPoints {
		lower := strings.ToLower(bp)
		for _, pp := range a.PainPoints {
			if w := strings.ToLower(firstWord(pp)); w != "" && strings.Contains(lower, w) {
				return bp, true
			}
		}
	}
	return "", false
}

const (
	fallbackPainPoint = "managing a global workforce"
	fallbackValueProp = "simplifies global employment"
)

func painPoint(c types.Contact, b types.AccountBrief, a types.PersonaAttributes, personalize bool) types.Email {
	personaPain := first(a.PainPoints, fallbackPainPoint)
	subject := fmt.Sprintf("%s challenges at %s", or(firstWord(personaPain), "Global"), b.CompanyName)

	var sb strings.Builder
	sb.WriteString(greeting(c))
	if personalize {
		focus := "expanding your global operations"
		if len(b.TriggerEvents) > 0 && strings.TrimSpace(b.TriggerEvents[0]) != "" {
			focus = "focusing on " + strings.ToLower(b.TriggerEvents[0])
		}
		pain := personaPain
		if rp, ok := relevantPainPoint(b, a); ok {
			pain = rp
		}
		fmt.Fprintf(&sb, "I noticed %s has been %s recently. Many %s professionals I work with are facing challenges with %s.\n\n",
			b.CompanyName, focus, audience(a), strings.ToLower(pain))
	} else {
		fmt.Fprintf(&sb, "I hope this email finds you well. I'm reaching out because many %s professionals are facing challenges with %s.\n\n",
			audience(a), strings.ToLower(personaPain))
	}
	fmt.Fprintf(&sb, "At Remote.com, we help companies like %s solve these exact challenges by providing a complete platform that %s.\n\n",
		b.CompanyName, strings.ToLower(first(a.ValueProps, fallbackValueProp)))
	if personalize {
		role := "Given your role"
		if strings.TrimSpace(c.Title) != "" {
			role += " as " + c.Title
		}
		fmt.Fprintf(&sb, "%s, I thought you might be interested in how we could help streamline your global operations in %s.\n\n",
			role, or(b.GlobalFootprint, "multiple countries"))
	} else {
		sb.WriteString("I'd love to share how we've helped similar companies streamline their global operations.\n\n")
	}
	fmt.Fprintf(&sb, "Would you have 15 minutes to discuss how Remote.com could help %s?\n\n", b.CompanyName)
	sb.WriteString(signature)

	return types.Email{Subject: subject, Body: sb.String(), Type: types.EmailPainPoint}
}

func caseStudy(c types.Contact, b types.AccountBrief, a types.PersonaAttributes, personalize bool, countries, savings int) types.Email {
	personaPain := first(a.PainPoints, fallbackPainPoint)
	subject := fmt.Sprintf("How %s solved %s challenges",
		or(b.SuggestedCaseStudy, "companies like yours"), strings.ToLower(or(firstWord(personaPain), "global")))

	var sb strings.Builder
	sb.WriteString(greeting(c))
	fmt.Fprintf(&sb, "I wanted to follow up and share a success story that might resonate with you at %s.\n\n", b.CompanyName)
	fmt.Fprintf(&sb, "%s was facing similar challenges with %s before working with Remote.com. After implementing our solution, they were able to:\n\n",
		or(b.SuggestedCaseStudy, "One of our clients in your industry"), strings.ToLower(personaPain))
	fmt.Fprintf(&sb, "- %s\n", first(a.ValueProps, fallbackValueProp))
	fmt.Fprintf(&sb, "- Reduce compliance risks in %d countries\n", countries)
	fmt.Fprintf(&sb, "- Achieve %d%% cost savings on global employment operations\n\n", savings)
	if personalize {
		fmt.Fprintf(&sb, "Given %s's focus on %s, I thought these results would be particularly relevant for you.\n\n",
			b.CompanyName, strings.ToLower(first(b.RecommendedOutreachAngles, "global growth")))
	} else {
		sb.WriteString("I thought these results would be relevant for you as you continue to grow your global team.\n\n")
	}
	fmt.Fprintf(&sb, "Would you be interested in learning more about how we achieved these results and how they might apply to %s?\n\n", b.CompanyName)
	sb.WriteString(signature)

	return types.Email{Subject: subject, Body: sb.String(), Type: types.EmailCaseStudy}
}

func objectionHandling(c types.Contact, b types.AccountBrief, a types.PersonaAttributes, personalize bool) types.Email {
	subject := fmt.Sprintf("Addressing common %s concerns about global employment platforms",
		strings.ToLower(firstWord(c.Persona.Label())))

	var sb strings.Builder
	sb.WriteString(greeting(c))
	fmt.Fprintf(&sb, "I understand that %s professionals often have concerns about implementing new global employment solutions.\n\n", audience(a))
	fmt.Fprintf(&sb, "Many %s leaders we work with initially worry about:\n\n", audience(a))
	for i, o := range persona.ObjectionsFor(c.Persona) {
		fmt.Fprintf(&sb, "%d. **%s**: %s\n", i+1, o.Topic, o.Response)
	}
	sb.WriteString("\n")
	if personalize {
		fmt.Fprintf(&sb, "I'd be happy to discuss how we've addressed these concerns for companies like %s, and specifically how we could help %s with %s.\n\n",
			or(b.SuggestedCaseStudy, "others in your industry"), b.CompanyName,
			strings.ToLower(first(b.RecommendedOutreachAngles, "your global workforce needs")))
	} else {
		sb.WriteString("I'd be happy to discuss how we've addressed these concerns for other companies and how we could specifically help your team.\n\n")
	}
	sb.WriteString("Would you be available for a brief conversation this week?\n\n")
	sb.WriteString(signature)

	return types.Email{Subject: subject, Body: sb.String(), Type: types.EmailObjectionHandling}
}

func valueAdd(c types.Contact, b types.AccountBrief, a types.PersonaAttributes, personalize bool) types.Email {
	subject := fmt.Sprintf("Resource: %s Guide to Global Employment", firstWord(a.Type.Label()))

	var sb strings.Builder
	sb.WriteString(greeting(c))
	fmt.Fprintf(&sb, "I wanted to share a resource that many %s professionals find valuable when considering global employment solutions.\n\n", audience(a))
	r := persona.ResourceFor(c.Persona)
	fmt.Fprintf(&sb, "Our %q %s:\n\n", r.Title, r.Lead)
	for _, item := range r.Bullets {
		fmt.Fprintf(&sb, "- %s\n", item)
	}
	sb.WriteString("\n")
	if personalize {
		fmt.Fprintf(&sb, "I thought this might be particularly valuable given %s's focus on %s.\n\n",
			b.CompanyName, or(b.GlobalFootprint, "international expansion"))
		fmt.Fprintf(&sb, "You can access this resource here: [Resource Link]. I'm also happy to walk through it with you specifically for your situation at %s.\n\n", b.CompanyName)
	} else {
		sb.WriteString("You can access this resource here: [Resource Link]. I'm also happy to walk through it with you for your specific situation.\n\n")
	}
	sb.WriteString("Let me know if you'd find that helpful.\n\n")
	sb.WriteString(signature)

	return types.Email{Subject: subject, Body: sb.String(), Type: types.EmailValueAdd}
}

func relationship(c types.Contact, b types.AccountBrief, a types.PersonaAttributes, personalize bool) types.Email {
	subject := fmt.Sprintf("Next steps for %s and Remote.com", b.CompanyName)

	var sb strings.Builder
	sb.WriteString(greeting(c))
	fmt.Fprintf(&sb, "I wanted to follow up regarding how Remote.com could support %s's global workforce needs.\n\n", b.CompanyName)
	second := at(a.ValueProps, 1, "Compliant global employment without local entities")
	if personalize {
		fmt.Fprintf(&sb, "Based on your %s and focus on %s, I believe we could provide significant value in the following areas:\n\n",
			or(b.GlobalFootprint, "international presence"), strings.ToLower(first(b.RecommendedOutreachAngles, "growth")))
		second = or(b.RemoteSolutionFocus, second)
	} else {
		sb.WriteString("I believe we could provide significant value in the following areas:\n\n")
	}
	fmt.Fprintf(&sb, "- %s\n", first(a.ValueProps, fallbackValueProp))
	fmt.Fprintf(&sb, "- %s\n\n", second)
	sb.WriteString("I'd welcome the opportunity to discuss these possibilities in a brief call. Would you have 15 minutes this week to connect?\n\n")
	sb.WriteString(signature)

	return types.Email{Subject: subject, Body: sb.String(), Type: types.EmailRelationship}
}
