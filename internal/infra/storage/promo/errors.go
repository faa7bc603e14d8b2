package promo

import "errors"

var (
	// ErrPromoNotFound возвращается, когда промокод не найден
	ErrPromoNotFound = errors.New("promo.repository: promo code not found")

	// ErrPromoExhausted возвращается, когда условный инкремент не прошел:
	// код неактивен или лимит использований исчерпан
	ErrPromoExhausted = errors.New("promo.repository: promo code is not usable")

	// ErrPromoCodeTaken возвращается при создании промокода с уже занятым кодом
	ErrPromoCodeTaken = errors.New("promo.repository: promo code already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("promo.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("promo.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("promo.repository: failed to scan row")
)
