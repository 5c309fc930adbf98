package importjob

import "errors"

var ErrJobNotFound = errors.New("import job not found")
