package v1handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	f := newAPIFixture(t)

	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "allowed",
			body: `{"url":"HTTPS://Pay.Hotmart.com/offer"}`,
			want: `{"valid":true,"sanitizedUrl":"https://pay.hotmart.com/offer"}`,
		},
		{
			name: "ip address",
			body: `{"url":"http://93.184.216.34/"}`,
			want: `{"valid":false,"reason":"DIRECT_IP_NOT_ALLOWED",` +
				`"error":"URLs addressed by IP are not allowed, use a domain name"}`,
		},
		{
			name: "empty",
			body: `{"url":""}`,
			want: `{"valid":false,"reason":"EMPTY_INPUT","error":"URL is empty"}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(http.MethodPost, "/urls/validate", tc.body)
			require.Equal(t, http.StatusOK, rec.Code)
			require.JSONEq(t, tc.want, rec.Body.String())
		})
	}
}
