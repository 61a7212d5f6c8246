package main

import (
	"github.com/cristianoliveira/gridsettings/internal/core"
)

var coreClient = core.NewCore()
