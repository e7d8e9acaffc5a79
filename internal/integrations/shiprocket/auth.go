package shiprocket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string `json:"token"`
}

// Token возвращает закэшированный bearer-токен или логинится заново.
// Апстрим выдаёт токен примерно на 10 дней; обновляем через 23 часа,
// чтобы никогда не предъявить протухший. Refresh сериализован мьютексом:
// конкурентные вызовы схлопываются в один логин.
func (c *Client) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	tok, err := c.login(ctx)
	if err != nil {
		return "", err
	}

	c.token = tok
	c.tokenExpiry = c.now().Add(tokenTTL)
	return tok, nil
}

func (c *Client) login(ctx context.Context) (string, error) {
	body, err := json.Marshal(loginReq{Email: c.email, Password: c.password})
	if err != nil {
		return "", &AuthError{Err: errors.Wrap(err, "marshal login")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return "", &AuthError{Err: errors.Wrap(err, "new request")}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", &AuthError{Err: errors.Wrap(err, "do request")}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", &AuthError{Unauthorized: true, Err: fmt.Errorf("shiprocket http %d", resp.StatusCode)}
	}

	var r loginResp
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", &AuthError{Err: errors.Wrap(err, "decode")}
	}
	if r.Token == "" {
		return "", &AuthError{Err: errors.New("empty token in login response")}
	}
	return r.Token, nil
}
