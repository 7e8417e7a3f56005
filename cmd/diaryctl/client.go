package main

import (
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
)

func newClient(apiURL, token string) *resty.Client {
	client := resty.New().
		SetBaseURL(apiURL).
		SetTimeout(60 * time.Second)
	if token != "" {
		client.SetAuthToken(token)
	}
	return client
}

func writeResponse(out io.Writer, resp *resty.Response) error {
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	_, err := fmt.Fprintln(out, resp.String())
	return err
}

func runLogin(apiURL, token string, out io.Writer) error {
	resp, err := newClient(apiURL, "").R().
		SetBody(map[string]string{"token": token}).
		Post("/login")
	if err != nil {
		return err
	}
	return writeResponse(out, resp)
}

func runAddEntry(apiURL, token, text, imagePath, audioPath string, out io.Writer) error {
	req := newClient(apiURL, token).R()
	if text != "" {
		req.SetFormData(map[string]string{"text": text})
	}
	if imagePath != "" {
		req.SetFile("image", imagePath)
	}
	if audioPath != "" {
		req.SetFile("audio", audioPath)
	}
	resp, err := req.Post("/entries")
	if err != nil {
		return err
	}
	return writeResponse(out, resp)
}

func runListEntries(apiURL, token string, out io.Writer) error {
	resp, err := newClient(apiURL, token).R().Get("/entries")
	if err != nil {
		return err
	}
	return writeResponse(out, resp)
}

func runSearch(apiURL, token, query string, out io.Writer) error {
	resp, err := newClient(apiURL, token).R().
		SetQueryParam("query", query).
		Get("/entries/search")
	if err != nil {
		return err
	}
	return writeResponse(out, resp)
}
