// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "html/template"

const (
	facebookURL   = "https://facebook.com/frankfurterrebels"
	defaultBanner = "/static/img/cricket-banner.svg"
)

// Home page slots.
var homeSlots = []Slot{
	{Name: "hero", Fallback: Block{
		Heading:             Text("Frankfurter Rebels Cricket Team"),
		Subtitle:            "EST. 2025 • FRANKFURT",
		Content:             "Join us in our journey to cricket excellence in Frankfurt, Germany.",
		ImageURL:            defaultBanner,
		ButtonText:          "FOLLOW ON FACEBOOK",
		ButtonLink:          facebookURL,
		ButtonTextSecondary: "MEET THE TEAM",
		ButtonLinkSecondary: "/team",
	}},
	{Name: "about", Fallback: Block{
		Heading:    Text("About Our Team"),
		Content:    "Founded with passion and determination, Frankfurter Rebels is more than just a cricket team - we're a family united by our love for the game.",
		ButtonText: "Learn More",
		ButtonLink: "/about",
	}},
	{Name: "team", Fallback: Block{
		Heading:    Text("Meet Our Team"),
		Content:    "The talented individuals who make up the Frankfurter Rebels. Each player brings unique skills and passion to our team.",
		ButtonText: "VIEW ALL PLAYERS",
		ButtonLink: "/team",
	}},
	{Name: "stats", Fallback: Block{
		Heading: Text("Team Stats"),
		Content: "Our achievements speak for themselves. Here's what we've accomplished so far.",
	}},
	{Name: "cta", Fallback: Block{
		Heading:             Text("Join the Frankfurter Rebels"),
		Content:             "Whether you're an experienced player or new to cricket, we welcome passionate individuals to join our team.",
		ButtonText:          "Contact Us",
		ButtonLink:          "/contact",
		ButtonTextSecondary: "FOLLOW ON FACEBOOK",
		ButtonLinkSecondary: facebookURL,
	}},
}

// homePlayerCount is how many players the home page previews.
const homePlayerCount = 6

// defaultStats are shown when no active team stat exists.
var defaultStats = []Stat{
	{Label: "Matches", Value: "45", Icon: "Trophy"},
	{Label: "Wins", Value: "32", Icon: "Star"},
	{Label: "Players", Value: "15", Icon: "Users"},
	{Label: "Years", Value: "1", Icon: "Shield"},
}

// About page slots.
var aboutSlots = []Slot{
	{Name: "hero", Fallback: Block{
		Heading:  template.HTML(`The Story of <span class="accent">Frankfurter Rebels</span>`),
		Content:  "Born from a shared passion for cricket and a desire to promote the sport in Germany, the Frankfurter Rebels represent the spirit of determination, excellence, and unity.",
		ImageURL: defaultBanner,
	}},
	{Name: "team_info", Fallback: Block{
		Heading:  Text("Team Information"),
		ImageURL: defaultBanner,
	}},
}

var (
	defaultMission = Entry{
		Title: "Our Mission",
		Body:  Markdown("To promote and develop cricket in Germany by providing a platform for players of all skill levels to learn, compete, and excel. We aim to build a strong cricket community in Frankfurt while maintaining the highest standards of sportsmanship and team spirit."),
		Icon:  "Target",
	}
	defaultVision = Entry{
		Title: "Our Vision",
		Body:  Markdown("To become one of the leading cricket teams in Germany, inspiring the next generation of cricketers and contributing to the growth of cricket as a popular sport in the country. We envision a future where cricket thrives in German sporting culture."),
		Icon:  "Eye",
	}
	defaultValues = []Entry{
		{Title: "Passion", Icon: "Heart", Body: Text("We play with heart and dedication, bringing our love for cricket to every match.")},
		{Title: "Team Spirit", Icon: "Users", Body: Text("Unity and camaraderie are the foundation of our success both on and off the field.")},
		{Title: "Excellence", Icon: "Target", Body: Text("We strive for continuous improvement and excellence in all aspects of the game.")},
		{Title: "Sportsmanship", Icon: "Award", Body: Text("We compete with honor, respect our opponents, and uphold the spirit of cricket.")},
	}
	defaultFacts = Facts{
		HomeGround:       "Frankfurt Cricket Ground, Hessen, Germany",
		FoundedYear:      "2025",
		TrainingSchedule: "Tuesday & Thursday evenings, Weekend matches",
		TeamSize:         "15 active players + support staff",
	}
)

// Team page defaults.
const (
	defaultRole        = "Player"
	defaultDescription = "No description available"
)

// Gallery page slots.
const defaultCategory = "Uncategorized"

var gallerySlots = []Slot{
	{Name: "gallery-cta", Fallback: Block{
		Heading:    Text("Want to be Part of Our Story?"),
		Content:    "Join the Frankfurter Rebels and create memories that will last a lifetime.",
		ButtonText: "Contact Us",
		ButtonLink: "/contact",
	}},
}

// Contact page slots.
var contactSlots = []Slot{
	{Name: "hero", Fallback: Block{
		Heading: Text("Contact Us"),
		Content: "Have questions, suggestions, or want to join the team? Reach out to us!",
	}},
	{Name: "form", Fallback: Block{
		Heading:    Text("Send Us a Message"),
		Content:    "Drop us a line and we will get back to you as soon as we can.",
		ButtonText: "Send Message",
	}},
}
