package domain

import (
	_ "embed"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
)

//go:embed default_content.json
var defaultContentJSON []byte

type NavItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	View      string `json:"view"`
	IsEnabled bool   `json:"isEnabled"`
}

type ReferenceItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Logo        string   `json:"logo"`
	Category    string   `json:"category"`
	Link        string   `json:"link"`
	WorkImages  []string `json:"workImages"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type ServiceItem struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Tagline        string   `json:"tagline"`
	Desc           string   `json:"desc"`
	IconType       string   `json:"iconType"`
	Image          string   `json:"image"`
	Accent         string   `json:"accent"`
	Features       []string `json:"features"`
	DetailedDesc   string   `json:"detailedDesc"`
	DetailedImages []string `json:"detailedImages"`
}

type BlogBlock struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Content   string   `json:"content"`
	ListItems []string `json:"listItems,omitempty"`
}

type BlogPost struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Excerpt        string      `json:"excerpt"`
	Blocks         []BlogBlock `json:"blocks"`
	Content        string      `json:"content,omitempty"`
	Author         string      `json:"author"`
	Date           string      `json:"date"`
	Image          string      `json:"image"`
	Category       string      `json:"category"`
	ReadTime       string      `json:"readTime"`
	Tags           []string    `json:"tags"`
	SeoTitle       string      `json:"seoTitle,omitempty"`
	SeoDescription string      `json:"seoDescription,omitempty"`
}

type CorporateSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Icon    string `json:"icon"`
}

// SiteContent é o esquema do documento editado pelo CMS
type SiteContent struct {
	Seo struct {
		SiteTitle       string `json:"siteTitle"`
		SiteDescription string `json:"siteDescription"`
		MetaKeywords    string `json:"metaKeywords"`
	} `json:"seo"`
	Navigation []NavItem `json:"navigation"`
	References struct {
		Title       string          `json:"title"`
		Description string          `json:"description"`
		Items       []ReferenceItem `json:"items"`
	} `json:"references"`
	Branding struct {
		LogoURL        string       `json:"logoUrl"`
		Socials        []SocialLink `json:"socials"`
		FooterText     string       `json:"footerText"`
		FooterTagline1 string       `json:"footerTagline1"`
		FooterTagline2 string       `json:"footerTagline2"`
		FooterTagline3 string       `json:"footerTagline3"`
	} `json:"branding"`
	Login struct {
		Title   string `json:"title"`
		Subtext string `json:"subtext"`
	} `json:"login"`
	Hero struct {
		TitlePart1   string `json:"titlePart1"`
		TitlePart2   string `json:"titlePart2"`
		TitlePart3   string `json:"titlePart3"`
		Subtitle     string `json:"subtitle"`
		PrimaryCTA   string `json:"primaryCTA"`
		SecondaryCTA string `json:"secondaryCTA"`
	} `json:"hero"`
	Corporate struct {
		Manifesto CorporateSection `json:"manifesto"`
		About     CorporateSection `json:"about"`
	} `json:"corporate"`
	Legal struct {
		Privacy string `json:"privacy"`
		Kvkk    string `json:"kvkk"`
		Terms   string `json:"terms"`
	} `json:"legal"`
	Services  []ServiceItem `json:"services"`
	BlogPosts []BlogPost    `json:"blogPosts"`
	BlogPage  struct {
		TopTitle    string `json:"topTitle"`
		MainTitle1  string `json:"mainTitle1"`
		MainTitle2  string `json:"mainTitle2"`
		Description string `json:"description"`
	} `json:"blogPage"`
	Contact struct {
		SidebarTopText     string `json:"sidebarTopText"`
		SidebarMainTitle1  string `json:"sidebarMainTitle1"`
		SidebarMainTitle2  string `json:"sidebarMainTitle2"`
		Subtitle           string `json:"subtitle"`
		FormTitle          string `json:"formTitle"`
		FormSubtitle       string `json:"formSubtitle"`
		Email              string `json:"email"`
		Phone              string `json:"phone"`
		Address            string `json:"address"`
		ShowEmail          bool   `json:"showEmail"`
		ShowPhone          bool   `json:"showPhone"`
		ShowAddress        bool   `json:"showAddress"`
		NameLabel          string `json:"nameLabel"`
		NamePlaceholder    string `json:"namePlaceholder"`
		EmailLabel         string `json:"emailLabel"`
		EmailPlaceholder   string `json:"emailPlaceholder"`
		PhoneLabel         string `json:"phoneLabel"`
		PhonePlaceholder   string `json:"phonePlaceholder"`
		MessageLabel       string `json:"messageLabel"`
		MessagePlaceholder string `json:"messagePlaceholder"`
		ButtonText         string `json:"buttonText"`
	} `json:"contact"`
	Portals struct {
		Client struct {
			WelcomeMsg     string `json:"welcomeMsg"`
			MetricsHeader  string `json:"metricsHeader"`
			ProjectsHeader string `json:"projectsHeader"`
		} `json:"client"`
		Employee struct {
			WelcomeMsg  string `json:"welcomeMsg"`
			TasksHeader string `json:"tasksHeader"`
		} `json:"employee"`
	} `json:"portals"`
}

// DefaultContent retorna uma cópia nova do documento padrão do site
func DefaultContent() map[string]any {
	var doc map[string]any
	if err := jsoniter.Unmarshal(defaultContentJSON, &doc); err != nil {
		panic(fmt.Sprintf("conteúdo padrão inválido: %v", err))
	}
	return doc
}

// ValidateContent confere se o documento respeita o esquema de SiteContent.
// Campos desconhecidos ou com tipo diferente do esperado são rejeitados.
func ValidateContent(doc map[string]any) error {
	var content SiteContent

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		Result:      &content,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(doc)
}
