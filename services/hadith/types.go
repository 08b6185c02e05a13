package hadith

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/M-S-KHAN/hadith-inc/models/constants"
)

const (
	hadithBaseAPI     = "https://www.hadithapi.com"
	clientHTTPTimeout = 15 * time.Second
)

var (
	ErrAPIKeyMissing = errors.New("hadith api key is missing")
	ErrTransport     = errors.New("hadith api is unreachable")
	ErrProvider      = errors.New("hadith api request failed")
	ErrMalformed     = errors.New("hadith api returned a malformed response")
)

type Hadith struct {
	English  string
	Urdu     string
	Narrator string
	BookName string
	Number   string
	Chapter  string
	Volume   string
}

type Service interface {
	Fetch(book constants.Book, number int) (*Hadith, error)
}

type Impl struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type hadithsResponse struct {
	Hadiths struct {
		Data []hadithData `json:"data"`
	} `json:"hadiths"`
}

// hadithNumber and volume come back as strings or numbers depending on the
// provider endpoint version, hence json.Number.
type hadithData struct {
	HadithNumber    json.Number `json:"hadithNumber"`
	HadithEnglish   string      `json:"hadithEnglish"`
	HadithUrdu      string      `json:"hadithUrdu"`
	EnglishNarrator string      `json:"englishNarrator"`
	Volume          json.Number `json:"volume"`
	Book            struct {
		BookName string `json:"bookName"`
	} `json:"book"`
	Chapter struct {
		ChapterEnglish string `json:"chapterEnglish"`
	} `json:"chapter"`
}
