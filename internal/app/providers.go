package app

import (
	"github.com/go-resty/resty/v2"

	"github.com/hiresync/hubspot-bridge/pkg/util"
)

func newRestyClient() *resty.Client {
	return util.NewRestyClient()
}
