package smtp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var Instance Provider

type Attachment struct {
	FileName string
	Body     []byte
}

type Provider interface {
	SendEMail(to, subject, message string) error
	SendEMailWithAttachment(to, subject, message string, attachment Attachment) error
}

func Connect(user, password, host, port, from string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		from:       from,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	from       string
	tlsEnabled bool
}

func (i impl) configured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) SendEMail(to, subject, message string) (err error) {
	logger := log.WithField("recipient", to)
	if !i.configured() {
		logger.Warn("email not sent, smtp client is not configured")
		return nil
	}
	sendTo := []string{
		to,
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	mimeHeaders := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\r\n"
	body := strings.NewReader(fmt.Sprintf("Subject: %s\n%s\r\n%s\r\n", subject, mimeHeaders, message))

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.from, sendTo, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.from, sendTo, body)
	}
	if err != nil {
		logger.WithError(err).Error("email send failed")
		return err
	}
	logger.Info("email sent")
	return nil
}

func (i impl) SendEMailWithAttachment(to, subject, message string, attachment Attachment) error {
	logger := log.WithField("recipient", to).WithField("attachment", attachment.FileName)
	if !i.configured() {
		logger.Warn("email not sent, smtp client is not configured")
		return nil
	}
	port, err := strconv.Atoi(i.port)
	if err != nil {
		return errors.Wrap(err, "invalid smtp port")
	}
	m := gomail.NewMessage()
	m.SetHeader("From", i.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", message)
	m.Attach(attachment.FileName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachment.Body)
		return err
	}))

	d := gomail.NewDialer(i.host, port, i.user, i.password)
	if err := d.DialAndSend(m); err != nil {
		logger.WithError(err).Error("email with attachment send failed")
		return err
	}
	logger.Info("email with attachment sent")
	return nil
}
