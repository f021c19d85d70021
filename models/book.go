package models

import "time"

type BookFormat string

const (
	FormatHardcover BookFormat = "hardcover"
	FormatPaperback BookFormat = "paperback"
	FormatEbook     BookFormat = "ebook"
	FormatAudiobook BookFormat = "audiobook"
)

// BookCategories maps category keys to display labels, grouped loosely the
// way the catalog presents them (fiction, non-fiction, academic, children,
// style).
var BookCategories = map[string]string{
	"fantasy":     "Fantasy",
	"scifi":       "Science Fiction",
	"mystery":     "Mystery / Detective",
	"thriller":    "Thriller / Suspense",
	"romance":     "Romance",
	"horror":      "Horror",
	"historical":  "Historical Fiction",
	"adventure":   "Adventure",
	"ya":          "Young Adult (YA)",
	"short_story": "Short Stories",
	"biography":   "Biography / Autobiography",
	"self_help":   "Self-Help",
	"history":     "History",
	"science":     "Science & Technology",
	"philosophy":  "Philosophy",
	"psychology":  "Psychology",
	"business":    "Business & Economics",
	"travel":      "Travel",
	"health":      "Health & Fitness",
	"essays":      "Essays",
	"textbook":    "Textbooks",
	"reference":   "Reference Books",
	"research":    "Research Papers",
	"journal":     "Journals",
	"exam":        "Exam Preparation",
	"picture":     "Picture Books",
	"early":       "Early Readers",
	"fairy":       "Fairy Tales",
	"comic":       "Comics & Graphic Novels",
	"novel":       "Novels",
	"novella":     "Novellas",
	"poetry":      "Poetry",
	"drama":       "Drama / Plays",
}

var BookFormats = map[BookFormat]string{
	FormatHardcover: "Hardcover",
	FormatPaperback: "Paperback",
	FormatEbook:     "E-book",
	FormatAudiobook: "Audiobook",
}

type Book struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string     `gorm:"not null" json:"title"`
	Author     string     `gorm:"not null" json:"author"`
	ISBN       string     `gorm:"unique;not null;size:13" json:"isbn"`
	Quantity   int        `gorm:"not null;check:quantity >= 0" json:"quantity"`
	Category   string     `gorm:"type:VARCHAR(50);default:'novel'" json:"category"`
	Format     BookFormat `gorm:"type:VARCHAR(20);default:'paperback'" json:"format"`
	PDFFile    string     `json:"pdf_file,omitempty"`
	CoverImage string     `json:"cover_image,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
