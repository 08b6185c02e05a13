package hadith

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/M-S-KHAN/hadith-inc/models/constants"

	"github.com/rs/zerolog/log"
)

func New(apiKey string) (*Impl, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	return &Impl{
		baseURL: hadithBaseAPI,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: clientHTTPTimeout,
		},
	}, nil
}

func (service *Impl) Fetch(book constants.Book, number int) (*Hadith, error) {
	log.Info().Str(constants.LogBook, book.Slug).Int(constants.LogHadithNumber, number).Msg("Start fetching hadith")

	endpoint := fmt.Sprintf("%s/public/api/hadiths?apiKey=%s&book=%s&hadithNumber=%d",
		service.baseURL, url.QueryEscape(service.apiKey), book.Slug, number)
	resp, err := service.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w with status: %d", ErrProvider, resp.StatusCode)
	}

	var result hadithsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if len(result.Hadiths.Data) == 0 {
		return nil, fmt.Errorf("%w: no hadith in response", ErrMalformed)
	}

	data := result.Hadiths.Data[0]
	if data.HadithEnglish == "" || data.Book.BookName == "" {
		return nil, fmt.Errorf("%w: missing hadith fields", ErrMalformed)
	}

	return &Hadith{
		English:  data.HadithEnglish,
		Urdu:     data.HadithUrdu,
		Narrator: data.EnglishNarrator,
		BookName: data.Book.BookName,
		Number:   data.HadithNumber.String(),
		Chapter:  data.Chapter.ChapterEnglish,
		Volume:   data.Volume.String(),
	}, nil
}
