package mocks

//go:generate mockery --name ApplicationSource --srcpkg github.com/dab97/stats-rgsu/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
