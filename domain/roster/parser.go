package roster

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"entitygraph-pipeline/utils"
)

/*
Entry 名册（"contact book" 式平面文本）中的一条记录。

	Name 条目名，由首字母大写的名字行开启；
	Phones、Emails 后续行中挂到该条目的联系方式；
	Notes 既不是名字、电话也不是邮箱的行，静默累积为自由文本；
*/
type Entry struct {
	Name   string
	Phones []string
	Emails []string
	Notes  string
}

var (
	nameLinePattern = regexp.MustCompile(`^[A-Z][A-Za-z.'\-]*(?: [A-Z][A-Za-z.'\-]*)+$`)
	phonePattern    = regexp.MustCompile(`(?:\+?\d{1,3}[-. ])?\(?\d{3}\)?[-. ]\d{3}[-. ]?\d{4}`)
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
)

/*
Parse 解析行式名册：首字母大写的名字行开启新条目，随后的行把电话、
邮箱挂到当前条目上，直到下一个名字行或文件结束。无法识别的行不报错，
累积进当前条目的自由文本。没有当前条目时的游离行被忽略。
*/
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	var current *Entry

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if nameLinePattern.MatchString(line) {
			entries = append(entries, Entry{Name: line})
			current = &entries[len(entries)-1]
			continue
		}

		if current == nil {
			continue
		}

		if email := emailPattern.FindString(line); len(email) != 0 {
			current.Emails = append(current.Emails, email)
			continue
		}

		if phone := phonePattern.FindString(line); len(phone) != 0 {
			current.Phones = append(current.Phones, phone)
			continue
		}

		if len(current.Notes) != 0 {
			current.Notes += " "
		}
		current.Notes += line
	}

	if err := scanner.Err(); err != nil {
		return nil, utils.WrapError(err, "scan roster fail")
	}

	return entries, nil
}

func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, utils.WrapErrorf(err, "open roster file [%s] fail", path)
	}
	defer f.Close()

	return Parse(f)
}
