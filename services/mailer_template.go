package services

import (
	"bytes"
	"html/template"
)

// invitationEmailData davetiye e-postası şablonunun verisi.
type invitationEmailData struct {
	GuestName   string
	CoupleNames string
	WeddingDate string
	Ceremony    string
	Reception   string
	SiteBaseURL string
	SideLabel   string
	GroupName   string
	HasImage    bool
	ImageCID    string
}

var invitationTmpl = template.Must(template.New("invitation").Parse(invitationHTMLTemplate))

func buildInvitationHTML(data invitationEmailData) (string, error) {
	var buf bytes.Buffer
	if err := invitationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const invitationHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Düğün Davetiyesi - {{.CoupleNames}}</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Arial', sans-serif; background-color: #f8f9fa;">
  <div style="max-width: 600px; margin: 0 auto; background-color: white; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">

    <!-- Başlık -->
    <div style="background: #8d5b4c; color: #f9f1e7; padding: 40px 20px; text-align: center;">
      <h1 style="margin: 0; font-size: 28px; font-weight: 300;">Davetlisiniz!</h1>
      <p style="margin: 10px 0 0 0; font-size: 16px; opacity: 0.9;">Düğün törenimize</p>
    </div>

    <!-- İçerik -->
    <div style="padding: 40px 20px;">
      <div style="text-align: center; margin-bottom: 30px;">
        <h2 style="margin: 0; font-size: 32px; color: #2c1810; font-weight: 400;">{{.CoupleNames}}</h2>
        {{if .WeddingDate}}<p style="margin: 10px 0; font-size: 18px; color: #8d5b4c;">{{.WeddingDate}}</p>{{end}}
      </div>

      <div style="margin-bottom: 30px;">
        <p style="font-size: 16px; color: #2c1810; line-height: 1.6;">
          Sevgili {{.GuestName}},
        </p>
        <p style="font-size: 16px; color: #2c1810; line-height: 1.6;">
          Hayatımızın bu özel gününü bizimle paylaşmanızdan büyük mutluluk duyarız.
          Varlığınız bizim için çok değerli.
        </p>
      </div>

      {{if .HasImage}}
      <img src="cid:{{.ImageCID}}" alt="Davetiye" style="max-width: 100%; height: auto; border-radius: 10px; margin: 20px 0;" />
      {{end}}

      <!-- Etkinlik Bilgileri -->
      <div style="background-color: #f9f1e7; padding: 30px; border-radius: 10px; margin: 30px 0;">
        <h3 style="margin: 0 0 20px 0; color: #2c1810; text-align: center;">Düğün Bilgileri</h3>

        {{if .WeddingDate}}
        <div style="margin-bottom: 20px;">
          <h4 style="margin: 0 0 5px 0; color: #8d5b4c; font-size: 16px;">Tarih &amp; Saat</h4>
          <p style="margin: 0; color: #2c1810;">{{.WeddingDate}}</p>
        </div>
        {{end}}

        {{if .Ceremony}}
        <div style="margin-bottom: 20px;">
          <h4 style="margin: 0 0 5px 0; color: #8d5b4c; font-size: 16px;">Nikah</h4>
          <p style="margin: 0; color: #2c1810;">{{.Ceremony}}</p>
        </div>
        {{end}}

        {{if .Reception}}
        <div>
          <h4 style="margin: 0 0 5px 0; color: #8d5b4c; font-size: 16px;">Davet</h4>
          <p style="margin: 0; color: #2c1810;">{{.Reception}}</p>
        </div>
        {{end}}
      </div>

      <!-- LCV Durumu -->
      <div style="text-align: center; margin: 30px 0;">
        <p style="font-size: 16px; color: #2c1810; margin-bottom: 20px;">
          Katılımınızı onayladığınız için teşekkür ederiz. Sizi aramızda görmek için sabırsızlanıyoruz!
        </p>
        <div style="background: #d4b08c; color: #2c1810; padding: 20px; border-radius: 10px;">
          <h4 style="margin: 0 0 10px 0;">LCV Durumu: Onaylandı</h4>
          <p style="margin: 0; font-size: 14px; opacity: 0.9;">
            {{.SideLabel}}{{if .GroupName}} &bull; {{.GroupName}}{{end}}
          </p>
        </div>
      </div>

      <!-- Site -->
      <div style="background-color: #f9f1e7; padding: 20px; border-radius: 10px; margin: 30px 0;">
        <h4 style="margin: 0 0 15px 0; color: #2c1810; text-align: center;">Düğün Sitemiz</h4>
        <p style="margin: 0 0 15px 0; text-align: center; font-size: 16px;">
          <a href="{{.SiteBaseURL}}" style="color: #8d5b4c; text-decoration: none; font-weight: 500;">{{.SiteBaseURL}}</a>
        </p>
        <p style="margin: 0; text-align: center; color: #2c1810; font-size: 14px;">
          Sorularınız için bize ulaşmaktan çekinmeyin.
        </p>
      </div>

      <div style="text-align: center; margin: 30px 0;">
        <p style="font-size: 16px; color: #2c1810; font-style: italic;">Sevgi ve heyecanla,</p>
        <p style="font-size: 18px; color: #8d5b4c; font-weight: 500; margin: 10px 0;">{{.CoupleNames}}</p>
      </div>
    </div>

    <!-- Alt bilgi -->
    <div style="background-color: #2c1810; color: #f9f1e7; padding: 20px; text-align: center;">
      <p style="margin: 0; font-size: 14px; opacity: 0.8;">
        Bu davetiye, düğünümüze "Geliyorum" cevabı verdiğiniz için gönderildi.
      </p>
    </div>

  </div>
</body>
</html>
`
