package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	AccessTokenInvalid  failure.ErrorCode = "AccessTokenInvalid"
	NotFound            failure.ErrorCode = "NotFound"

	// Каталог подарков
	GiftNotFound        failure.ErrorCode = "GiftNotFound"        // ID есть, но в базе нет
	InvalidGiftID       failure.ErrorCode = "InvalidGiftID"       // Пришёл мусор вместо ID
	InvalidGrade        failure.ErrorCode = "InvalidGrade"        // Редкость вне справочника
	GiftNameRequired    failure.ErrorCode = "GiftNameRequired"    // Создание без имени
	EventInfoNotFound   failure.ErrorCode = "EventInfoNotFound"   // Синглтон не засеян
	EventInfoIncomplete failure.ErrorCode = "EventInfoIncomplete" // Оба текста обязательны

	// Резервирование
	GiftAlreadyReserved failure.ErrorCode = "GiftAlreadyReserved" // Конфликт: уже занят
	GiftNotReserved     failure.ErrorCode = "GiftNotReserved"     // Конфликт: снимать нечего

	// Ассеты (некритично, мутация записи не блокируется)
	AssetError failure.ErrorCode = "AssetError"
)
