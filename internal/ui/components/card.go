package components

import (
	"strings"

	"github.com/yourusername/ghlookup/internal/ui/layout"
	"github.com/yourusername/ghlookup/internal/ui/theme"
)

// CardType defines the type of card
type CardType int

const (
	CardDefault CardType = iota
	CardSuccess
	CardError
)

// Card represents a bordered content box
type Card struct {
	Title   string
	Content string
	Width   int
	Type    CardType
}

// NewCard creates a new card with default settings
func NewCard(title, content string) *Card {
	return &Card{
		Title:   title,
		Content: content,
		Type:    CardDefault,
	}
}

// SetType sets the card type
func (c *Card) SetType(cardType CardType) *Card {
	c.Type = cardType
	return c
}

// SetWidth sets the card width including border
func (c *Card) SetWidth(width int) *Card {
	c.Width = width
	return c
}

// Render renders the card
func (c *Card) Render() string {
	styles := theme.Global().Styles()
	cardStyle := styles.ResultBox

	switch c.Type {
	case CardSuccess:
		cardStyle = cardStyle.BorderForeground(styles.ColorSuccess)
	case CardError:
		cardStyle = cardStyle.BorderForeground(styles.ColorError)
	}

	if c.Width > 0 {
		w := c.Width - 2
		if w < layout.ResultMinWide {
			w = layout.ResultMinWide
		}
		cardStyle = cardStyle.Width(w)
	}

	content := c.Content
	if c.Title != "" {
		content = styles.SectionTitle.UnsetMarginTop().Render(c.Title) + "\n" + c.Content
	}

	return cardStyle.Render(content)
}

// InfoItem represents a key-value pair in an info card
type InfoItem struct {
	Label string
	Value string
}

// InfoCard renders label/value lines inside a card
type InfoCard struct {
	*Card
	Items []InfoItem
}

// NewInfoCard creates a new info card
func NewInfoCard(title string, items []InfoItem) *InfoCard {
	return &InfoCard{
		Card:  NewCard(title, "").SetType(CardSuccess),
		Items: items,
	}
}

// Render renders the info card
func (ic *InfoCard) Render() string {
	styles := theme.Global().Styles()

	lines := make([]string, 0, len(ic.Items))
	for _, item := range ic.Items {
		label := styles.ResultLabel.Render(item.Label + ":")
		value := styles.ResultValue.Render(item.Value)
		lines = append(lines, label+" "+value)
	}

	ic.Content = strings.Join(lines, "\n")
	return ic.Card.Render()
}
