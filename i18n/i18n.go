// Package i18n holds the localized diagnostic strings.
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The English text is the key itself.
const (
	MsgUsage    = "usage: %s <config_file>"
	MsgNotFound = "ERROR: config file not found: %s"
	MsgParse    = "ERROR: config parse error: %v"
	MsgGeneric  = "ERROR: %v"
	MsgEmpty    = "WARNING: config file is empty"
	MsgSummary  = "%s: %d records"
)

// defaultLang is the fallback language
var defaultLang = language.English

// supportedLangs are the languages with a catalog entry
var supportedLangs = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var matcher = language.NewMatcher(supportedLangs)

func init() {
	zh := language.SimplifiedChinese
	for key, msg := range map[string]string{
		MsgUsage:    "用法: %s <config_file>",
		MsgNotFound: "ERROR: 配置文件不存在: %s",
		MsgParse:    "ERROR: 配置文件解析错误: %v",
		MsgGeneric:  "ERROR: %v",
		MsgEmpty:    "WARNING: 配置文件为空",
		MsgSummary:  "%s: %d 条规则",
	} {
		if err := message.SetString(zh, key, msg); err != nil {
			panic(err)
		}
	}
}

// MatchLanguage returns the supported language closest to lang, which may be
// a BCP 47 tag or a POSIX locale such as zh_CN.UTF-8.
func MatchLanguage(lang string) language.Tag {
	if i := strings.IndexAny(lang, ".@"); i != -1 {
		lang = lang[:i]
	}
	if lang == "" || lang == "C" || lang == "POSIX" {
		return defaultLang
	}
	lang = strings.ReplaceAll(lang, "_", "-")

	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return defaultLang
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return defaultLang
	}
	return supportedLangs[idx]
}

// NewCLIPrinter returns a printer for lang, falling back to the locale
// environment (LC_ALL, then LANG) when lang is empty.
func NewCLIPrinter(lang string) *message.Printer {
	if lang == "" {
		lang = os.Getenv("LC_ALL")
	}
	if lang == "" {
		lang = os.Getenv("LANG")
	}
	return message.NewPrinter(MatchLanguage(lang))
}
