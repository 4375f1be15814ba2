package handler

import (
	"github.com/sirupsen/logrus"

	"github.com/ranfysvalle02/secure-llm-output/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}
